package service

import (
	"math/rand"
	"time"

	"piggie_backend/internal/domain" // Importing domain models
	"piggie_backend/internal/plaid"  // Transaction aggregator client

	"github.com/google/uuid" // UUIDs for demo transaction IDs
	"gorm.io/gorm"           // GORM ORM library
)

// Merchant and category pools for locally generated demo transactions.
var demoMerchants = []string{
	"Starbucks", "Target", "Amazon", "Chipotle", "Uber Eats",
	"Spotify", "Netflix", "Apple Store", "CVS", "Whole Foods",
	"McDonald's", "Subway", "Pizza Hut", "Best Buy", "Trader Joe's",
}

var demoCategories = []string{
	"Food and Drink", "Shopping", "Entertainment", "Transportation",
	"Groceries", "Restaurants", "General Merchandise",
}

// GenerateDemoTransactions creates and persists count demo transactions for
// offline/local use: random merchants and categories, amounts between $1 and
// $50, spread over the last 30 days.
func GenerateDemoTransactions(db *gorm.DB, userPublicID string, count int) ([]domain.Transaction, error) {
	now := time.Now()
	transactions := make([]domain.Transaction, 0, count)
	for i := 0; i < count; i++ {
		// Random time within the last 30 days
		daysAgo := rand.Intn(31)
		timestamp := now.AddDate(0, 0, -daysAgo).Add(-time.Duration(rand.Intn(24)) * time.Hour)
		// Random amount between $1.00 and $50.00
		amountCents := int64(100 + rand.Intn(4901))
		transactions = append(transactions, domain.Transaction{
			UserPublicID:  userPublicID,                           // Owner
			TransactionID: "demo_" + uuid.NewString(),             // Unique demo transaction ID
			AmountCents:   amountCents,                            // Purchase amount in cents
			Merchant:      demoMerchants[rand.Intn(len(demoMerchants))],   // Random merchant
			Category:      demoCategories[rand.Intn(len(demoCategories))], // Random category
			Timestamp:     timestamp.UnixMilli(),                  // Transaction time
			Source:        "local",                                // Locally generated
			Pending:       false,                                  // Demo transactions are settled
		})
	}
	// Persist so round-ups can be applied against them
	if err := db.Create(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// SyncPlaidTransactions fetches the last 30 days of transactions from the
// aggregator and stores the ones not seen before. Returns the newly stored
// transactions.
func SyncPlaidTransactions(db *gorm.DB, user *domain.User, accessToken string, client plaid.Client) ([]domain.Transaction, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -30)
	// Fetch normalized transactions from the aggregator
	fetched, err := client.GetTransactions(accessToken, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	var stored []domain.Transaction
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, t := range fetched {
			// Skip transactions already stored
			var existing domain.Transaction
			if err := tx.Where("transaction_id = ?", t.TransactionID).First(&existing).Error; err == nil {
				continue
			}
			record := domain.Transaction{
				UserPublicID:  user.PublicID,   // Owner
				TransactionID: t.TransactionID, // Aggregator transaction ID
				AmountCents:   t.AmountCents,   // Purchase amount in cents
				Merchant:      t.Merchant,      // Merchant name
				Category:      t.Category,      // Category (may be empty)
				Timestamp:     t.Timestamp.UnixMilli(), // Transaction time
				Source:        "plaid",         // Aggregator sourced
				Pending:       t.Pending,       // Pending flag
			}
			if err := tx.Create(&record).Error; err != nil {
				return err // Return error to rollback
			}
			stored = append(stored, record)
		}
		return nil // Commit transaction
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}
