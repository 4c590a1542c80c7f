package domain

// Wallet Model
type Wallet struct {
	ID             uint   `gorm:"primaryKey"`           // Primary key
	UserPublicID   string `gorm:"uniqueIndex;not null"` // Foreign key to User public ID (one wallet per user)
	SavingsCents   int64  `gorm:"not null;default:0"`   // Savings balance in cents
	InvestingCents int64  `gorm:"not null;default:0"`   // Investing balance in cents
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli"` // Timestamp of last update in milliseconds
}
