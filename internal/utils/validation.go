package utils

import (
	"regexp"  // Regular expressions
	"strings" // String manipulation
	"time"    // Current year for graduation-year bounds
)

// Common password denylist
var commonPasswords = map[string]bool{
	"password": true, "1234567890": true, "qwerty": true, "qwerty123": true,
	"password123": true, "12345678": true, "123456789": true, "abc123": true,
	"password1": true, "welcome123": true,
}

// Precompiled validation patterns
var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`) // Basic email format
	namePattern   = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)                                 // Letters, spaces, hyphens, apostrophes
	schoolPattern = regexp.MustCompile(`^[a-zA-Z0-9\s.\-']+$`)                             // Safe school-name characters
	upperPattern  = regexp.MustCompile(`[A-Z]`)                                            // At least one uppercase letter
	lowerPattern  = regexp.MustCompile(`[a-z]`)                                            // At least one lowercase letter
	digitPattern  = regexp.MustCompile(`\d`)                                               // At least one digit
	symbolPattern = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)             // At least one symbol
)

// ValidateEmail checks email format. Returns "" when valid, else a message.
func ValidateEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email address"
	}
	// RFC 5321 limit
	if len(email) > 254 {
		return "Email address is too long"
	}
	return ""
}

// ValidateName checks a display name. Returns "" when valid, else a message.
func ValidateName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Name is required"
	}
	if len(name) < 2 {
		return "Name must be at least 2 characters"
	}
	if len(name) > 40 {
		return "Name must be no more than 40 characters"
	}
	if !namePattern.MatchString(name) {
		return "Name can only contain letters, spaces, hyphens, and apostrophes"
	}
	return ""
}

// ValidateSchool checks a school name. Returns "" when valid, else a message.
func ValidateSchool(school string) string {
	school = strings.TrimSpace(school)
	if school == "" {
		return "School is required"
	}
	if len(school) < 2 {
		return "School name must be at least 2 characters"
	}
	if len(school) > 60 {
		return "School name must be no more than 60 characters"
	}
	if !schoolPattern.MatchString(school) {
		return "School name contains invalid characters"
	}
	return ""
}

// ValidateGradYear checks a graduation year against a ±10 year window.
func ValidateGradYear(gradYear int) string {
	currentYear := time.Now().Year()
	if gradYear < currentYear-10 || gradYear > currentYear+10 {
		return "Graduation year must be within 10 years of the current year"
	}
	return ""
}

// ValidateMonthlyGoal checks a monthly goal amount in dollars.
func ValidateMonthlyGoal(amount float64) string {
	if amount < 0 {
		return "Monthly goal must be positive"
	}
	if amount > 5000 {
		return "Monthly goal cannot exceed $5,000"
	}
	return ""
}

// ValidatePassword checks password strength. Returns "" when valid, else a message.
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < 10 {
		return "Password must be at least 10 characters"
	}
	if len(password) > 72 {
		return "Password must be no more than 72 characters"
	}
	if !upperPattern.MatchString(password) {
		return "Password must include at least one uppercase letter"
	}
	if !lowerPattern.MatchString(password) {
		return "Password must include at least one lowercase letter"
	}
	if !digitPattern.MatchString(password) {
		return "Password must include at least one number"
	}
	if !symbolPattern.MatchString(password) {
		return "Password must include at least one symbol"
	}
	// Check against common passwords
	if commonPasswords[strings.ToLower(password)] {
		return "This password is too common. Please choose a stronger password"
	}
	return ""
}
