package service

import (
	"errors"
	"piggie_backend/internal/domain"  // Importing domain models
	"piggie_backend/internal/roundup" // Round-up arithmetic

	"gorm.io/gorm" // GORM ORM library
)

// GetOrCreateAllocation fetches the user's allocation percentages, creating
// the 40/30/30 default if the user has never set their own. Safe to call
// inside a transaction; repeated calls see the same persisted default.
func GetOrCreateAllocation(db *gorm.DB, userPublicID string) (*domain.Allocation, error) {
	var alloc domain.Allocation
	err := db.Where("user_public_id = ?", userPublicID).First(&alloc).Error
	// Create the default allocation on first access
	if errors.Is(err, gorm.ErrRecordNotFound) {
		alloc = domain.Allocation{
			UserPublicID:     userPublicID,                     // Owner
			SavingsPercent:   roundup.DefaultSavingsPercent,   // Default: 40% savings
			InvestingPercent: roundup.DefaultInvestingPercent, // Default: 30% investing
			GoalsPercent:     roundup.DefaultGoalsPercent,     // Default: 30% goals
		}
		if err := db.Create(&alloc).Error; err != nil {
			return nil, err // Return error if creation fails
		}
		return &alloc, nil
	}
	if err != nil {
		return nil, err // Other storage error
	}
	return &alloc, nil
}

// GetOrCreateWallet fetches the user's wallet, creating a zero-balance wallet
// on first access so callers can assume it exists.
func GetOrCreateWallet(db *gorm.DB, userPublicID string) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := db.Where("user_public_id = ?", userPublicID).First(&wallet).Error
	// Create a zero-balance wallet on first access
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wallet = domain.Wallet{UserPublicID: userPublicID}
		if err := db.Create(&wallet).Error; err != nil {
			return nil, err // Return error if creation fails
		}
		return &wallet, nil
	}
	if err != nil {
		return nil, err // Other storage error
	}
	return &wallet, nil
}

// ApplyRoundup applies a round-up to a transaction and allocates the funds
// according to the user's allocation percentages, as one atomic unit of work:
// resolve-or-default the allocation, split, credit the wallet, credit the
// requested or default goal, and write the audit record. If goal resolution
// finds no matching goal the goals share is folded into wallet savings and
// the record stores goals_cents = 0 with a nil goal id, so no money is ever
// lost. On any storage failure nothing is committed.
func ApplyRoundup(db *gorm.DB, user *domain.User, transactionID string, roundupCents int64, goalID *uint) (*domain.Roundup, error) {
	// Caller must supply a positive round-up
	if roundupCents <= 0 {
		return nil, ErrNonPositiveRoundup
	}
	var record domain.Roundup
	// All mutations commit together or not at all
	err := db.Transaction(func(tx *gorm.DB) error {
		// Reject a second application for the same transaction
		var existing domain.Roundup
		err := tx.Where("user_public_id = ? AND transaction_id = ?", user.PublicID, transactionID).First(&existing).Error
		if err == nil {
			return ErrRoundupExists // Already applied
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err // Storage error
		}
		// Resolve the user's allocation (creates the default if absent)
		alloc, err := GetOrCreateAllocation(tx, user.PublicID)
		if err != nil {
			return err
		}
		// Compute the three-way split; remainder goes to goals
		savingsCents, investingCents, goalsCents := roundup.Split(roundupCents, alloc.SavingsPercent, alloc.InvestingPercent)
		// Resolve the wallet (creates a zero-balance wallet if absent)
		wallet, err := GetOrCreateWallet(tx, user.PublicID)
		if err != nil {
			return err
		}
		// Resolve the goal for the goals share
		var creditedGoalID *uint
		if goalsCents > 0 {
			var goal domain.Goal
			if goalID != nil {
				// Requested goal must belong to the user
				err = tx.Where("id = ? AND user_public_id = ?", *goalID, user.PublicID).First(&goal).Error
			} else {
				// Otherwise use the default goal if one exists
				err = tx.Where("user_public_id = ? AND is_default = ?", user.PublicID, true).First(&goal).Error
			}
			if err == nil {
				// Credit the goal
				if err := tx.Model(&goal).Update("current_cents", gorm.Expr("current_cents + ?", goalsCents)).Error; err != nil {
					return err
				}
				creditedGoalID = &goal.ID
			} else if errors.Is(err, gorm.ErrRecordNotFound) {
				// No matching goal: fold the goals share into savings instead
				savingsCents += goalsCents
				goalsCents = 0
			} else {
				return err // Storage error
			}
		}
		// Credit the wallet balances
		if err := tx.Model(wallet).Updates(map[string]any{
			"savings_cents":   gorm.Expr("savings_cents + ?", savingsCents),
			"investing_cents": gorm.Expr("investing_cents + ?", investingCents),
		}).Error; err != nil {
			return err
		}
		// Write the immutable audit record reflecting the final split
		record = domain.Roundup{
			UserPublicID:   user.PublicID,  // Owner
			TransactionID:  transactionID,  // Transaction this round-up applies to
			RoundupCents:   roundupCents,   // Total round-up
			SavingsCents:   savingsCents,   // Final savings share (fallback included)
			InvestingCents: investingCents, // Final investing share
			GoalsCents:     goalsCents,     // Final goals share (0 on fallback)
			GoalID:         creditedGoalID, // Goal actually credited, nil otherwise
		}
		if err := tx.Create(&record).Error; err != nil {
			return err // Return error to rollback
		}
		return nil // Commit transaction
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}
