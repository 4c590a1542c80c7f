package domain

// PlaidItem Model (a linked bank connection)
type PlaidItem struct {
	ID              uint   `gorm:"primaryKey"`           // Primary key
	UserPublicID    string `gorm:"index;not null"`       // Foreign key to User public ID
	ItemID          string `gorm:"uniqueIndex;not null"` // Plaid item identifier
	AccessToken     string `gorm:"not null"`             // Plaid access token (should be encrypted in production)
	InstitutionID   string // Institution identifier
	InstitutionName string // Institution display name
	LastSync        int64  // Timestamp of last transaction sync in milliseconds (0 if never)
	CreatedAt       int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
