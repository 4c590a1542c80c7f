package domain

// MerchantRule Model (per-merchant auto round-up preference)
type MerchantRule struct {
	ID           uint   `gorm:"primaryKey"`           // Primary key
	UserPublicID string `gorm:"index;not null"`       // Foreign key to User public ID
	Merchant     string `gorm:"not null"`             // Merchant name the rule applies to
	AutoRoundup  bool   `gorm:"default:false"`        // Whether round-ups apply automatically for this merchant
	CreatedAt    int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
