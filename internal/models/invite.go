package models

import "time"

// Invite — одноразово згенерований токен запрошення до події.
// ExpiresAt може бути nil — таке запрошення не протухає.
type Invite struct {
	Token     string     `gorm:"primaryKey" json:"token"`
	EventID   string     `gorm:"index" json:"event_id"`
	CreatedBy string     `json:"created_by"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
