package api

import (
	"context"                         // Context for Redis operations
	"errors"                          // Error kind matching
	"net/http"                        // HTTP status codes
	"piggie_backend/internal/domain"  // Importing domain models
	"piggie_backend/internal/money"   // Display formatting
	"piggie_backend/internal/roundup" // Round-up arithmetic
	"piggie_backend/internal/service" // Core round-up services
	"piggie_backend/internal/utils"   // Utility functions
	"strconv"                         // String conversion
	"time"                            // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// CalculateRequest represents a round-up preview request
type CalculateRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"` // Transaction to preview
}

// ApplyRequest represents a round-up application request
type ApplyRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"` // Transaction to round up
	GoalID        *uint  `json:"goal_id"`                           // Goal to credit (optional)
}

// ownedTransaction fetches a transaction owned by the user, writing a 404
// when it cannot be resolved
func ownedTransaction(c *gin.Context, db *gorm.DB, userPublicID, transactionID string) (*domain.Transaction, bool) {
	transaction, err := service.FindOwnedTransaction(db, userPublicID, transactionID)
	if err != nil {
		// Unknown or unowned transaction
		if errors.Is(err, service.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load transaction"})
		return nil, false
	}
	return transaction, true
}

// CalculateRoundupHandler returns the round-up amount for a transaction
// without applying it
func CalculateRoundupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var req CalculateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Resolve the owned transaction
		transaction, ok := ownedTransaction(c, db, user.PublicID, req.TransactionID)
		if !ok {
			return
		}
		roundupCents := roundup.Calculate(transaction.AmountCents) // Round-up amount
		c.JSON(http.StatusOK, gin.H{
			"roundup_cents":            roundupCents,                              // Round-up amount
			"roundup_display":          money.CentsToDollarsString(roundupCents),  // Formatted round-up
			"transaction_amount_cents": transaction.AmountCents,                   // Purchase amount
		})
	}
}

// ApplyRoundupHandler applies a round-up to a transaction and allocates the
// funds across savings, investing, and goals
func ApplyRoundupHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var req ApplyRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Resolve the owned transaction
		transaction, ok := ownedTransaction(c, db, user.PublicID, req.TransactionID)
		if !ok {
			return
		}
		// Compute the round-up amount
		roundupCents := roundup.Calculate(transaction.AmountCents)
		if roundupCents <= 0 {
			// Zero round-ups are rejected here, not inside the core
			c.JSON(http.StatusBadRequest, gin.H{"error": "No round-up available for this transaction"})
			return
		}
		// Apply the round-up atomically
		record, err := service.ApplyRoundup(db, user, req.TransactionID, roundupCents, req.GoalID)
		if err != nil {
			// Already applied for this transaction
			if errors.Is(err, service.ErrRoundupExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "Round-up already applied to this transaction"})
				return
			}
			// Non-positive round-up (guarded above, kept for the core contract)
			if errors.Is(err, service.ErrNonPositiveRoundup) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No round-up available for this transaction"})
				return
			}
			// Log the storage failure; everything was rolled back
			logrus.WithFields(logrus.Fields{
				"public_id":      user.PublicID,     // User public ID
				"transaction_id": req.TransactionID, // Transaction ID
				"roundup_cents":  roundupCents,      // Round-up amount
				"error":          err.Error(),       // Error message
			}).Error("Round-up application failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Round-up failed"})
			return
		}
		// Log the successful application
		logrus.WithFields(logrus.Fields{
			"public_id":       user.PublicID,                                  // User public ID
			"transaction_id":  req.TransactionID,                              // Transaction ID
			"roundup":         money.CentsToDollarsString(record.RoundupCents), // Total round-up
			"savings_cents":   record.SavingsCents,                            // Savings share
			"investing_cents": record.InvestingCents,                          // Investing share
			"goals_cents":     record.GoalsCents,                              // Goals share
		}).Info("Round-up applied")
		// Invalidate the user's cached wallet and round-up history
		utils.InvalidateUserCache(context.Background(), rdb, user.PublicID)
		// Return the final split
		c.JSON(http.StatusOK, gin.H{
			"roundup_cents":   record.RoundupCents,   // Total round-up
			"savings_cents":   record.SavingsCents,   // Savings share
			"investing_cents": record.InvestingCents, // Investing share
			"goals_cents":     record.GoalsCents,     // Goals share
			"goal_id":         record.GoalID,         // Goal credited, null otherwise
		})
	}
}

// RoundupHistoryHandler returns the user's round-up records, paginated and
// cached
func RoundupHistoryHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		page := 1      // Default page
		pageSize := 20 // Default page size
		// If page exists in query
		if p := c.Query("page"); p != "" {
			// Convert page to integer
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// If page_size exists in query
		if ps := c.Query("page_size"); ps != "" {
			// Convert page_size to integer
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size if valid
			}
		}
		offset := (page - 1) * pageSize // Calculate offset
		ctx := context.Background()     // Context for Redis operations
		// Key the cache on the user's current version so invalidation covers
		// every page and page size
		version := utils.RoundupHistoryVersion(ctx, rdb, user.PublicID)
		cacheKey := utils.RoundupHistoryCacheKey(user.PublicID, version, page, pageSize)
		var cached struct {
			Roundups   []domain.Roundup `json:"roundups"`    // List of round-up records
			Page       int              `json:"page"`        // Current page
			PageSize   int              `json:"page_size"`   // Page size
			Total      int64            `json:"total"`       // Total records
			TotalPages int              `json:"total_pages"` // Total pages
		}
		// Try to get from cache
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"roundups":    cached.Roundups,   // Cached records
				"page":        cached.Page,       // Current page
				"page_size":   cached.PageSize,   // Page size
				"total":       cached.Total,      // Total records
				"total_pages": cached.TotalPages, // Total pages
				"cached":      true,              // From cache
			})
			return
		}
		var total int64 // Total count of records
		// Count total records for pagination
		if err := db.Model(&domain.Roundup{}).Where("user_public_id = ?", user.PublicID).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count round-ups"})
			return
		}
		var roundups []domain.Roundup // Slice to hold records
		// Fetch paginated records
		if err := db.Where("user_public_id = ?", user.PublicID).
			Order("created_at desc").
			Offset(offset).
			Limit(pageSize).
			Find(&roundups).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch round-ups"})
			return
		}
		// Calculate total pages
		totalPages := (int(total) + pageSize - 1) / pageSize
		resp := gin.H{
			"roundups":    roundups,   // List of records
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total records
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Not from cache
		}
		// Cache the result for 60 seconds
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second)
		c.JSON(http.StatusOK, resp) // Return round-up history
	}
}
