package domain

// Event Model (analytics event log)
type Event struct {
	ID           uint   `gorm:"primaryKey"`           // Primary key
	UserPublicID string `gorm:"index;not null"`       // Foreign key to User public ID
	EventType    string `gorm:"not null"`             // Event type: prompt_shown, prompt_accepted, etc
	Metadata     string `gorm:"type:text"`            // JSON string of event metadata
	CreatedAt    int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
