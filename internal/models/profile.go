package models

import (
	"time"

	"github.com/lib/pq" // Необхідний для pq.StringArray
)

// Profile — публічна картка користувача, яку бачать інші учасники події.
type Profile struct {
	UserID      string         `gorm:"primaryKey" json:"user_id"`
	DisplayName string         `json:"display_name"`
	Interests   pq.StringArray `gorm:"type:text[]" json:"interests"` // Теги інтересів
	CreatedAt   time.Time      `json:"created_at"`
}
