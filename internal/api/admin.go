package api

import (
	"context"                        // Context for Redis operations
	"net/http"                       // HTTP status codes
	"piggie_backend/internal/domain" // Importing domain models
	"piggie_backend/internal/utils"  // Utility functions
	"strconv"                        // String conversion
	"time"                           // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// UserAdminResponse is a user row in the admin listing
type UserAdminResponse struct {
	PublicID       string `json:"public_id"`       // Public identifier
	Email          string `json:"email"`           // Email address
	Name           string `json:"name"`            // Display name
	School         string `json:"school"`          // School name
	SavingsCents   int64  `json:"savings_cents"`   // Savings balance
	InvestingCents int64  `json:"investing_cents"` // Investing balance
}

// pagination reads page and page_size query parameters with defaults
func pagination(c *gin.Context) (page, pageSize int) {
	page = 1      // Default page number
	pageSize = 20 // Default page size
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	// Check and set page size within limits
	if ps := c.Query("page_size"); ps != "" {
		// If valid, set page size
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v // Set page size
		}
	}
	return page, pageSize
}

// ListUsersHandler returns all users with their wallet balances
func ListUsersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		// Create a cache key based on pagination parameters
		cacheKey := "admin:users:page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		// Try to get cached response
		var cached struct {
			Users      []UserAdminResponse `json:"users"`       // List of users
			Page       int                 `json:"page"`        // Current page
			PageSize   int                 `json:"page_size"`   // Page size
			Total      int64               `json:"total"`       // Total number of users
			TotalPages int                 `json:"total_pages"` // Total pages
		}
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"users":       cached.Users,      // List of users
				"page":        cached.Page,       // Current page
				"page_size":   cached.PageSize,   // Page size
				"total":       cached.Total,      // Total number of users
				"total_pages": cached.TotalPages, // Total pages
				"cached":      true,              // Indicate response is from cache
			})
			return
		}
		page, pageSize := pagination(c) // Read pagination parameters
		offset := (page - 1) * pageSize // Calculate offset for pagination
		var total int64                 // Total user count
		// Fetch total user count
		if err := db.Model(&domain.User{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count users"}) // Return on error
			return
		}
		var users []domain.User // Slice to hold users
		// Apply offset and limit for pagination
		if err := db.Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"}) // Return on error
			return
		}
		// Join each user with their wallet balances
		resp := make([]UserAdminResponse, 0, len(users))
		for _, u := range users {
			var wallet domain.Wallet // Wallet may not exist yet
			_ = db.Where("user_public_id = ?", u.PublicID).First(&wallet).Error
			resp = append(resp, UserAdminResponse{
				PublicID:       u.PublicID,            // Public identifier
				Email:          u.Email,               // Email address
				Name:           u.Name,                // Display name
				School:         u.School,              // School name
				SavingsCents:   wallet.SavingsCents,   // Savings balance (0 if no wallet)
				InvestingCents: wallet.InvestingCents, // Investing balance (0 if no wallet)
			})
		}
		// Calculate total pages
		totalPages := (int(total) + pageSize - 1) / pageSize
		out := gin.H{
			"users":       resp,       // List of users
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total users
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Not from cache
		}
		// Cache the result for 60 seconds
		_ = utils.SetCache(ctx, rdb, cacheKey, out, 60*time.Second)
		c.JSON(http.StatusOK, out) // Return the user listing
	}
}

// ListRoundupsHandler returns all round-up records across users
func ListRoundupsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		// Create a cache key based on pagination parameters
		cacheKey := "admin:roundups:page=" + c.DefaultQuery("page", "1") + ":size=" + c.DefaultQuery("page_size", "20")
		// Try to get cached response
		var cached struct {
			Roundups   []domain.Roundup `json:"roundups"`    // List of round-up records
			Page       int              `json:"page"`        // Current page
			PageSize   int              `json:"page_size"`   // Page size
			Total      int64            `json:"total"`       // Total records
			TotalPages int              `json:"total_pages"` // Total pages
		}
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{
				"roundups":    cached.Roundups,   // List of records
				"page":        cached.Page,       // Current page
				"page_size":   cached.PageSize,   // Page size
				"total":       cached.Total,      // Total records
				"total_pages": cached.TotalPages, // Total pages
				"cached":      true,              // Indicate response is from cache
			})
			return
		}
		page, pageSize := pagination(c) // Read pagination parameters
		offset := (page - 1) * pageSize // Calculate offset for pagination
		var total int64                 // Total record count
		// Fetch total record count
		if err := db.Model(&domain.Roundup{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count round-ups"}) // Return on error
			return
		}
		var roundups []domain.Roundup // Slice to hold records
		// Fetch paginated records, newest first
		if err := db.Order("created_at desc").Offset(offset).Limit(pageSize).Find(&roundups).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch round-ups"}) // Return on error
			return
		}
		// Calculate total pages
		totalPages := (int(total) + pageSize - 1) / pageSize
		out := gin.H{
			"roundups":    roundups,   // List of records
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total records
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Not from cache
		}
		// Cache the result for 60 seconds
		_ = utils.SetCache(ctx, rdb, cacheKey, out, 60*time.Second)
		c.JSON(http.StatusOK, out) // Return the round-up listing
	}
}
