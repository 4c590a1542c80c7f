package api

import (
	"net/http"                        // HTTP status codes
	"piggie_backend/internal/domain"  // Importing domain models
	"piggie_backend/internal/plaid"   // Transaction aggregator client
	"piggie_backend/internal/service" // Core round-up services
	"time"                            // Sync timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Number of demo transactions generated for users without a linked bank
const demoTransactionCount = 20

// GetTransactionsHandler returns the user's transactions: aggregator-synced
// when a bank is linked, locally generated demo transactions otherwise
func GetTransactionsHandler(db *gorm.DB, client plaid.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		// Check if the user has a linked bank
		var item domain.PlaidItem
		hasItem := db.Where("user_public_id = ?", user.PublicID).First(&item).Error == nil
		if hasItem {
			// Try to sync the latest transactions; continue on failure with
			// whatever is already stored
			if _, err := service.SyncPlaidTransactions(db, user, item.AccessToken, client); err != nil {
				logrus.WithFields(logrus.Fields{
					"public_id": user.PublicID, // User public ID
					"error":     err.Error(),   // Error message
				}).Warn("Transaction sync failed")
			} else {
				// Record the sync time
				_ = db.Model(&item).Update("last_sync", time.Now().UnixMilli()).Error
			}
		}
		// Build the query, optionally filtered by a since timestamp
		query := db.Where("user_public_id = ?", user.PublicID)
		if since := c.Query("since"); since != "" {
			// Parse ISO8601 since parameter; invalid values are ignored
			if t, err := time.Parse(time.RFC3339, since); err == nil {
				query = query.Where("timestamp >= ?", t.UnixMilli())
			}
		}
		var transactions []domain.Transaction // Slice to hold transactions
		if err := query.Order("timestamp desc").Limit(100).Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		// Without a linked bank or stored transactions, generate demo data so
		// round-ups can be tried locally
		if !hasItem && len(transactions) == 0 {
			generated, err := service.GenerateDemoTransactions(db, user.PublicID, demoTransactionCount)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate transactions"})
				return
			}
			transactions = generated
		}
		c.JSON(http.StatusOK, transactions) // Return the transactions
	}
}
