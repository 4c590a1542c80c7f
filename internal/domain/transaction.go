package domain

// Transaction Model
type Transaction struct {
	ID            uint   `gorm:"primaryKey"`           // Primary key
	UserPublicID  string `gorm:"index;not null"`       // Foreign key to User public ID
	TransactionID string `gorm:"uniqueIndex;not null"` // External transaction identifier
	AmountCents   int64  `gorm:"not null"`             // Purchase amount in cents
	Merchant      string `gorm:"not null"`             // Merchant name
	Category      string // Transaction category (may be empty)
	Timestamp     int64  `gorm:"not null"`             // Transaction time in milliseconds
	Source        string `gorm:"not null"`             // Source: plaid or local
	Pending       bool   `gorm:"default:false"`        // Whether the transaction is still pending
	CreatedAt     int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
