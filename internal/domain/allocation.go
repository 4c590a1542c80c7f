package domain

// Allocation Model
type Allocation struct {
	ID               uint    `gorm:"primaryKey"`           // Primary key
	UserPublicID     string  `gorm:"uniqueIndex;not null"` // Foreign key to User public ID (one allocation per user)
	SavingsPercent   float64 `gorm:"not null;default:0"`   // Percent of each round-up sent to savings
	InvestingPercent float64 `gorm:"not null;default:0"`   // Percent of each round-up sent to investing
	GoalsPercent     float64 `gorm:"not null;default:0"`   // Percent of each round-up sent to goals
	UpdatedAt        int64   `gorm:"autoUpdateTime:milli"` // Timestamp of last update in milliseconds
}
