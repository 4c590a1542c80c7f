package domain

// Roundup Model (append-only audit record, one per applied round-up)
type Roundup struct {
	ID             uint   `gorm:"primaryKey"`                                       // Primary key
	UserPublicID   string `gorm:"index;not null;uniqueIndex:idx_user_transaction"` // Foreign key to User public ID
	TransactionID  string `gorm:"not null;uniqueIndex:idx_user_transaction"`       // Transaction this round-up was applied to (once per user)
	RoundupCents   int64  `gorm:"not null"`                                        // Total round-up amount in cents
	SavingsCents   int64  `gorm:"not null;default:0"`                              // Portion sent to savings
	InvestingCents int64  `gorm:"not null;default:0"`                              // Portion sent to investing
	GoalsCents     int64  `gorm:"not null;default:0"`                              // Portion sent to a goal (0 if folded into savings)
	GoalID         *uint  // Goal credited, nil when no goal received funds
	CreatedAt      int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
