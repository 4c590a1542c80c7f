package api

import (
	"errors"                          // Error kind matching
	"net/http"                        // HTTP status codes
	"piggie_backend/internal/domain"  // Importing domain models
	"piggie_backend/internal/service" // Core round-up services
	"strconv"                         // String conversion

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// GoalRequest represents a goal create or update request
type GoalRequest struct {
	Name        string `json:"name" binding:"required"`         // Goal name
	TargetCents int64  `json:"target_cents" binding:"required,gt=0"` // Target amount in cents
	Icon        string `json:"icon"`                            // Display icon
	IsDefault   bool   `json:"is_default"`                      // Whether this goal receives unassigned round-ups
}

// goalByID fetches a goal owned by the user, writing a 404 when absent
func goalByID(c *gin.Context, db *gorm.DB, userPublicID string) (*domain.Goal, bool) {
	id, err := strconv.Atoi(c.Param("id")) // Parse goal ID from path
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID"})
		return nil, false
	}
	goal, err := service.FindOwnedGoal(db, userPublicID, uint(id)) // Fetch goal owned by the user
	if err != nil {
		// Unknown or unowned goal
		if errors.Is(err, service.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load goal"})
		return nil, false
	}
	return goal, true
}

// unsetOtherDefaults clears the default flag on all other goals so at most
// one goal per user is the default
func unsetOtherDefaults(db *gorm.DB, userPublicID string, exceptID uint) error {
	return db.Model(&domain.Goal{}).
		Where("user_public_id = ? AND is_default = ? AND id <> ?", userPublicID, true, exceptID).
		Update("is_default", false).Error
}

// CreateGoalHandler creates a new savings goal
func CreateGoalHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var req GoalRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		icon := req.Icon // Default icon when none supplied
		if icon == "" {
			icon = "🎯"
		}
		goal := domain.Goal{
			UserPublicID: user.PublicID,  // Owner
			Name:         req.Name,       // Goal name
			TargetCents:  req.TargetCents, // Target amount
			Icon:         icon,           // Display icon
			IsDefault:    req.IsDefault,  // Default flag
		}
		// Create the goal and keep the single-default invariant in one transaction
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&goal).Error; err != nil {
				return err // Return error to rollback
			}
			// If this goal is the default, unset all others
			if goal.IsDefault {
				return unsetOtherDefaults(tx, user.PublicID, goal.ID)
			}
			return nil // Commit transaction
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
			return
		}
		c.JSON(http.StatusCreated, goal) // Return the created goal
	}
}

// ListGoalsHandler returns all of the user's goals, newest first
func ListGoalsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var goals []domain.Goal // Slice to hold goals
		if err := db.Where("user_public_id = ?", user.PublicID).Order("created_at desc").Find(&goals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
			return
		}
		c.JSON(http.StatusOK, goals) // Return the goals
	}
}

// GetGoalHandler returns a specific goal
func GetGoalHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		goal, ok := goalByID(c, db, user.PublicID) // Fetch the goal
		if !ok {
			return
		}
		c.JSON(http.StatusOK, goal) // Return the goal
	}
}

// UpdateGoalHandler updates a goal's name, target, icon, and default flag
func UpdateGoalHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		goal, ok := goalByID(c, db, user.PublicID) // Fetch the goal
		if !ok {
			return
		}
		var req GoalRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Apply the update and keep the single-default invariant in one transaction
		err := db.Transaction(func(tx *gorm.DB) error {
			// If setting as default, unset others first
			if req.IsDefault {
				if err := unsetOtherDefaults(tx, user.PublicID, goal.ID); err != nil {
					return err // Return error to rollback
				}
			}
			return tx.Model(goal).Updates(map[string]any{
				"name":         req.Name,        // New name
				"target_cents": req.TargetCents, // New target
				"icon":         req.Icon,        // New icon
				"is_default":   req.IsDefault,   // New default flag
			}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
			return
		}
		c.JSON(http.StatusOK, goal) // Return the updated goal
	}
}

// DeleteGoalHandler deletes a goal
func DeleteGoalHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		goal, ok := goalByID(c, db, user.PublicID) // Fetch the goal
		if !ok {
			return
		}
		// Delete the goal
		if err := db.Delete(goal).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success"}) // Return success response
	}
}

// SetDefaultGoalHandler marks a goal as the default round-up destination
func SetDefaultGoalHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		goal, ok := goalByID(c, db, user.PublicID) // Fetch the goal
		if !ok {
			return
		}
		// Set the default flag and unset all others in one transaction
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := unsetOtherDefaults(tx, user.PublicID, goal.ID); err != nil {
				return err // Return error to rollback
			}
			return tx.Model(goal).Update("is_default", true).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default goal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success"}) // Return success response
	}
}
