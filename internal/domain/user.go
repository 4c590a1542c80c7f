package domain

// User Model
type User struct {
	ID               uint   `gorm:"primaryKey"`           // Primary key
	PublicID         string `gorm:"uniqueIndex;not null"` // Stable public identifier exposed to clients
	Email            string `gorm:"uniqueIndex;not null"` // Unique email address
	Password         string `gorm:"not null"`             // Hashed password
	Name             string `gorm:"not null"`             // Display name
	School           string `gorm:"not null"`             // School name
	GradYear         int    `gorm:"not null"`             // Graduation year
	MonthlyGoalCents int64  `gorm:"not null;default:0"`   // Monthly savings goal in cents
	Role             string `gorm:"default:user"`         // Role: user or admin
	CreatedAt        int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
