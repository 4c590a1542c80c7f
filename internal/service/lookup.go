package service

import (
	"errors"
	"piggie_backend/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// FindOwnedTransaction resolves a transaction identifier to a transaction
// owned by the user, returning ErrTransactionNotFound otherwise.
func FindOwnedTransaction(db *gorm.DB, userPublicID, transactionID string) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := db.Where("transaction_id = ? AND user_public_id = ?", transactionID, userPublicID).First(&transaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound // Unknown or unowned
	}
	if err != nil {
		return nil, err // Storage error
	}
	return &transaction, nil
}

// FindOwnedGoal resolves a goal ID to a goal owned by the user, returning
// ErrGoalNotFound otherwise. Used by goal CRUD; goal misses during round-up
// application deliberately fall back instead of erroring.
func FindOwnedGoal(db *gorm.DB, userPublicID string, goalID uint) (*domain.Goal, error) {
	var goal domain.Goal
	err := db.Where("id = ? AND user_public_id = ?", goalID, userPublicID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound // Unknown or unowned
	}
	if err != nil {
		return nil, err // Storage error
	}
	return &goal, nil
}
