package api

import (
	"net/http"                       // HTTP status codes
	"piggie_backend/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// currentUser resolves the authenticated user from the public ID the JWT
// middleware stored in the context. Writes a 401 response and returns false
// when the user cannot be resolved.
func currentUser(c *gin.Context, db *gorm.DB) (*domain.User, bool) {
	publicID, exists := c.Get("publicID") // Get publicID from context
	// Check if publicID exists in context
	if !exists {
		// If not, return unauthorized
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	var user domain.User // Fetch user from database
	if err := db.Where("public_id = ?", publicID).First(&user).Error; err != nil {
		// If user not found, return unauthorized
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return &user, true
}
