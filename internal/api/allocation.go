package api

import (
	"net/http"                        // HTTP status codes
	"piggie_backend/internal/roundup" // Round-up arithmetic and validation
	"piggie_backend/internal/service" // Core round-up services

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// AllocationRequest represents an allocation update request
type AllocationRequest struct {
	SavingsPercent   float64 `json:"savings_percent"`   // Percent of each round-up sent to savings
	InvestingPercent float64 `json:"investing_percent"` // Percent of each round-up sent to investing
	GoalsPercent     float64 `json:"goals_percent"`     // Percent of each round-up sent to goals
}

// GetAllocationHandler returns the user's allocation percentages, creating
// the 40/30/30 default if none exist
func GetAllocationHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		// Fetch or create the allocation
		alloc, err := service.GetOrCreateAllocation(db, user.PublicID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load allocation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"savings_percent":   alloc.SavingsPercent,   // Savings percent
			"investing_percent": alloc.InvestingPercent, // Investing percent
			"goals_percent":     alloc.GoalsPercent,     // Goals percent
		})
	}
}

// UpdateAllocationHandler updates the user's allocation percentages. Updates
// whose percentages do not sum to 100 are rejected and nothing is persisted.
func UpdateAllocationHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var req AllocationRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Reject percentages that do not sum to 100; the stored allocation is untouched
		if err := roundup.ValidatePercents(req.SavingsPercent, req.InvestingPercent, req.GoalsPercent); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Allocation percentages must sum to 100"})
			return
		}
		// Fetch or create the allocation, then apply the update
		alloc, err := service.GetOrCreateAllocation(db, user.PublicID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load allocation"})
			return
		}
		if err := db.Model(alloc).Updates(map[string]any{
			"savings_percent":   req.SavingsPercent,   // New savings percent
			"investing_percent": req.InvestingPercent, // New investing percent
			"goals_percent":     req.GoalsPercent,     // New goals percent
		}).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"public_id": user.PublicID, // User public ID
				"error":     err.Error(),   // Error message
			}).Error("Allocation update failed") // Log failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update allocation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"savings_percent":   req.SavingsPercent,   // Savings percent
			"investing_percent": req.InvestingPercent, // Investing percent
			"goals_percent":     req.GoalsPercent,     // Goals percent
		})
	}
}
