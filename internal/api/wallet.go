package api

import (
	"context"                         // Context for Redis operations
	"net/http"                        // HTTP status codes
	"piggie_backend/internal/domain"  // Importing domain models
	"piggie_backend/internal/service" // Core round-up services
	"piggie_backend/internal/utils"   // Utility functions
	"time"                            // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// Minimum baseline for displayed portfolio returns ($10)
const minInitialInvestmentCents = 1000

// GetWalletHandler returns wallet balances for the authenticated user,
// creating a zero-balance wallet on first access
func GetWalletHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		ctx := context.Background()                               // Context for Redis operations
		cacheKey := utils.WalletCacheKey(user.PublicID)           // Cache key for wallet
		var wallet domain.Wallet                                  // Wallet struct to hold data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &wallet) // Try to get from cache
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"savings_cents":   wallet.SavingsCents,   // Savings balance
				"investing_cents": wallet.InvestingCents, // Investing balance
				"cached":          true,                  // From cache
			})
			return
		}
		// Not cached: fetch or create the wallet
		w, err := service.GetOrCreateWallet(db, user.PublicID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wallet"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, w, 60*time.Second) // Cache the wallet for 60 seconds
		c.JSON(http.StatusOK, gin.H{
			"savings_cents":   w.SavingsCents,   // Savings balance
			"investing_cents": w.InvestingCents, // Investing balance
			"cached":          false,            // Not from cache
		})
	}
}

// GetPortfolioHandler returns the simulated portfolio summary for the
// authenticated user's investing balance
func GetPortfolioHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		// Fetch or create the wallet
		wallet, err := service.GetOrCreateWallet(db, user.PublicID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wallet"})
			return
		}
		// Baseline for displayed returns: current value, floored at $10
		initialInvestment := wallet.InvestingCents
		if initialInvestment < minInitialInvestmentCents {
			initialInvestment = minInitialInvestmentCents
		}
		summary := service.GetPortfolioSummary(user.PublicID, initialInvestment, wallet.InvestingCents)
		c.JSON(http.StatusOK, summary) // Return portfolio summary
	}
}
