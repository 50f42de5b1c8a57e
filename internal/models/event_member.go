package models

import "time"

// Ролі та статуси членства в події.
const (
	RoleAdmin    = "admin"
	RoleAttendee = "attendee"

	StatusJoined  = "joined"
	StatusBlocked = "blocked"
)

// EventMember — запис про участь користувача в події.
// Складений первинний ключ гарантує один запис на пару (подія, користувач).
type EventMember struct {
	EventID  string    `gorm:"primaryKey" json:"event_id"`
	UserID   string    `gorm:"primaryKey" json:"user_id"`
	Role     string    `json:"role"`   // "admin" або "attendee"
	Status   string    `json:"status"` // "joined" або "blocked"
	JoinedAt time.Time `json:"joined_at"`
}
