package api

import (
	"net/http"                       // HTTP status codes
	"piggie_backend/internal/domain" // Importing domain models
	"piggie_backend/internal/money"  // Minor-unit conversion
	"piggie_backend/internal/utils"  // Utility functions
	"strings"                        // String manipulation
	"time"                           // Token expiry

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Token lifetime for issued JWTs
const tokenExpiry = 24 * time.Hour

// SignupRequest represents a signup request
type SignupRequest struct {
	Name        string  `json:"name" binding:"required"`     // Display name
	Email       string  `json:"email" binding:"required"`    // Email address
	Password    string  `json:"password" binding:"required"` // Password
	School      string  `json:"school" binding:"required"`   // School name
	GradYear    int     `json:"grad_year" binding:"required"` // Graduation year
	MonthlyGoal float64 `json:"monthly_goal"`                // Monthly savings goal in dollars
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// AuthResponse is the token payload returned on signup and login
type AuthResponse struct {
	AccessToken string `json:"access_token"` // JWT token
	TokenType   string `json:"token_type"`   // Always bearer
}

// validateSignup runs the field validators and returns the first error message
func validateSignup(req *SignupRequest) string {
	if msg := utils.ValidateEmail(req.Email); msg != "" {
		return msg // Invalid email
	}
	if msg := utils.ValidateName(req.Name); msg != "" {
		return msg // Invalid name
	}
	if msg := utils.ValidateSchool(req.School); msg != "" {
		return msg // Invalid school
	}
	if msg := utils.ValidateGradYear(req.GradYear); msg != "" {
		return msg // Invalid graduation year
	}
	if msg := utils.ValidateMonthlyGoal(req.MonthlyGoal); msg != "" {
		return msg // Invalid monthly goal
	}
	if msg := utils.ValidatePassword(req.Password); msg != "" {
		return msg // Weak password
	}
	return ""
}

// SignupHandler creates a new user account and returns a JWT token
func SignupHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate all signup fields
		if msg := validateSignup(&req); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email)) // Normalize email
		// Check if email already exists
		var existing domain.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		// Hash the password
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		// Generate a unique public ID
		publicID := utils.GeneratePublicID()
		for db.Where("public_id = ?", publicID).First(&domain.User{}).Error == nil {
			publicID = utils.GeneratePublicID() // Regenerate on collision
		}
		// Convert the monthly goal to cents
		monthlyGoalCents, err := money.DollarsToCents(req.MonthlyGoal)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid monthly goal"})
			return
		}
		user := domain.User{
			PublicID:         publicID,                        // Public identifier
			Email:            email,                           // Normalized email
			Password:         string(hash),                    // Hashed password
			Name:             strings.TrimSpace(req.Name),     // Display name
			School:           strings.TrimSpace(req.School),   // School name
			GradYear:         req.GradYear,                    // Graduation year
			MonthlyGoalCents: monthlyGoalCents,                // Monthly goal in cents
		}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"email": email,       // Requested email
				"error": err.Error(), // Error message
			}).Error("Signup failed") // Log signup failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		// Issue a JWT token
		token, err := utils.GenerateJWT(user.PublicID, jwtSecret, tokenExpiry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Log successful signup
		logrus.WithFields(logrus.Fields{
			"public_id": user.PublicID, // New user's public ID
			"school":    user.School,   // School
		}).Info("User signed up")
		// Return the token in the response
		c.JSON(http.StatusCreated, AuthResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.PublicID, jwtSecret, tokenExpiry)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// MeHandler returns the authenticated user's profile
func MeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c, db) // Resolve the authenticated user
		if !ok {
			return
		}
		// Return the profile without the password hash
		c.JSON(http.StatusOK, gin.H{
			"public_id":          user.PublicID,        // Public identifier
			"email":              user.Email,           // Email address
			"name":               user.Name,            // Display name
			"school":             user.School,          // School name
			"grad_year":          user.GradYear,        // Graduation year
			"monthly_goal_cents": user.MonthlyGoalCents, // Monthly goal in cents
		})
	}
}
