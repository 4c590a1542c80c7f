package api

import (
	"errors"                         // Error kind matching
	"net/http"                       // HTTP status codes
	"piggie_backend/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// MerchantRuleRequest represents a merchant rule create or update request
type MerchantRuleRequest struct {
	Merchant    string `json:"merchant" binding:"required"` // Merchant name the rule applies to
	AutoRoundup bool   `json:"auto_roundup"`                // Whether round-ups apply automatically
}

// ListMerchantRulesHandler returns the user's merchant rules
func ListMerchantRulesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var rules []domain.MerchantRule // Slice to hold rules
		if err := db.Where("user_public_id = ?", user.PublicID).Order("merchant asc").Find(&rules).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch merchant rules"})
			return
		}
		c.JSON(http.StatusOK, rules) // Return the rules
	}
}

// UpsertMerchantRuleHandler creates or updates the auto round-up flag for a
// merchant
func UpsertMerchantRuleHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var req MerchantRuleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var rule domain.MerchantRule // Look for an existing rule
		err := db.Where("user_public_id = ? AND merchant = ?", user.PublicID, req.Merchant).First(&rule).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Create a new rule for this merchant
			rule = domain.MerchantRule{
				UserPublicID: user.PublicID,   // Owner
				Merchant:     req.Merchant,    // Merchant name
				AutoRoundup:  req.AutoRoundup, // Auto round-up flag
			}
			if err := db.Create(&rule).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save merchant rule"})
				return
			}
			c.JSON(http.StatusCreated, rule) // Return the created rule
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load merchant rule"})
			return
		}
		// Update the existing rule's flag
		if err := db.Model(&rule).Update("auto_roundup", req.AutoRoundup).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save merchant rule"})
			return
		}
		c.JSON(http.StatusOK, rule) // Return the updated rule
	}
}
