package api

import (
	"net/http"                       // HTTP status codes
	"piggie_backend/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// EventRequest represents an analytics event
type EventRequest struct {
	EventType string `json:"event_type" binding:"required"` // Event type: prompt_shown, prompt_accepted, etc
	Metadata  string `json:"metadata"`                      // JSON string of event metadata
}

// CreateEventHandler logs an analytics event for the authenticated user
func CreateEventHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		var req EventRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		event := domain.Event{
			UserPublicID: user.PublicID, // Owner
			EventType:    req.EventType, // Event type
			Metadata:     req.Metadata,  // Event metadata
		}
		// Store the event
		if err := db.Create(&event).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log event"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success"}) // Return success response
	}
}
