package api

import (
	"errors"                          // Error handling
	"net/http"                        // HTTP status codes
	"piggie_backend/internal/domain"  // Importing domain models
	"piggie_backend/internal/plaid"   // Transaction aggregator client
	"piggie_backend/internal/service" // Business logic services
	"time"                            // Sync timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ExchangeRequest represents a public-token exchange request
type ExchangeRequest struct {
	PublicToken   string `json:"public_token" binding:"required"` // Link public token
	InstitutionID string `json:"institution_id"`                  // Institution chosen in Link (optional)
}

// CreateLinkTokenHandler creates an aggregator Link token for the user
func CreateLinkTokenHandler(db *gorm.DB, client plaid.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		// Create the Link token
		linkToken, err := client.CreateLinkToken(user.PublicID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"public_id": user.PublicID, // User public ID
				"error":     err.Error(),   // Error message
			}).Error("Link token creation failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"link_token": linkToken}) // Return the link token
	}
}

// ExchangeTokenHandler exchanges a Link public token for an access token and
// stores the linked bank connection
func ExchangeTokenHandler(db *gorm.DB, client plaid.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var req ExchangeRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Exchange the public token
		accessToken, itemID, err := client.ExchangePublicToken(req.PublicToken)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"public_id": user.PublicID, // User public ID
				"error":     err.Error(),   // Error message
			}).Error("Token exchange failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to exchange token"})
			return
		}
		item := domain.PlaidItem{
			UserPublicID: user.PublicID, // Owner
			ItemID:       itemID,        // Aggregator item ID
			AccessToken:  accessToken,   // Access token
		}
		// Look up the institution name when an ID was supplied
		if req.InstitutionID != "" {
			if inst, err := client.GetInstitution(req.InstitutionID); err == nil && inst != nil {
				item.InstitutionID = inst.InstitutionID // Institution ID
				item.InstitutionName = inst.Name        // Institution name
			}
		}
		// Store the linked connection
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bank connection"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"item_id":          item.ItemID,          // Aggregator item ID
			"institution_name": item.InstitutionName, // Institution name (may be empty)
		})
	}
}

// GetPlaidItemHandler returns the user's linked bank connection
func GetPlaidItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var item domain.PlaidItem // Linked connection record
		if err := db.Where("user_public_id = ?", user.PublicID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// No bank linked yet
				c.JSON(http.StatusNotFound, gin.H{"error": "No bank connection found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bank connection"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"item_id":          item.ItemID,          // Aggregator item ID
			"institution_name": item.InstitutionName, // Institution name (may be empty)
			"last_sync":        item.LastSync,        // Last sync time (0 when never synced)
		})
	}
}

// SyncTransactionsHandler pulls fresh transactions from the aggregator for the
// user's linked bank and records the sync time
func SyncTransactionsHandler(db *gorm.DB, client plaid.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var item domain.PlaidItem // Linked connection record
		if err := db.Where("user_public_id = ?", user.PublicID).First(&item).Error; err != nil {
			// Syncing requires a linked bank
			c.JSON(http.StatusNotFound, gin.H{"error": "No bank connection found"})
			return
		}
		// Fetch and store the new transactions
		stored, err := service.SyncPlaidTransactions(db, user, item.AccessToken, client)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"public_id": user.PublicID, // User public ID
				"item_id":   item.ItemID,   // Aggregator item ID
				"error":     err.Error(),   // Error message
			}).Error("Transaction sync failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync transactions"})
			return
		}
		// Record when the connection was last synced
		if err := db.Model(&item).Update("last_sync", time.Now().UnixMilli()).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sync time"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",    // Sync status
			"message": "Transactions synced", // Human-readable result
			"synced":  len(stored),  // Newly stored transaction count
		})
	}
}
