package domain

// Goal Model
type Goal struct {
	ID           uint   `gorm:"primaryKey"`           // Primary key
	UserPublicID string `gorm:"index;not null"`       // Foreign key to User public ID
	Name         string `gorm:"not null"`             // Goal name
	TargetCents  int64  `gorm:"not null"`             // Target amount in cents
	CurrentCents int64  `gorm:"not null;default:0"`   // Accumulated amount in cents (may exceed target)
	Icon         string `gorm:"default:'🎯'"`         // Display icon
	IsDefault    bool   `gorm:"default:false"`        // At most one default goal per user
	CreatedAt    int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
