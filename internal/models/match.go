package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match — симетричний запис про взаємний правий свайп пари користувачів.
// Пара зберігається в канонічному порядку (UserLow < UserHigh), тому
// невпорядкована пара {A,B} завжди відображається в один і той самий ключ,
// незалежно від того, чий запит створив запис.
type Match struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	EventID   string    `gorm:"uniqueIndex:idx_matches_pair" json:"event_id"`
	UserLow   string    `gorm:"uniqueIndex:idx_matches_pair" json:"user_low"`
	UserHigh  string    `gorm:"uniqueIndex:idx_matches_pair" json:"user_high"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate — хук GORM, генерує UUID, якщо ID ще не встановлено.
func (m *Match) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

// CanonicalPair повертає два ідентифікатори у фіксованому лексикографічному
// порядку. Саме цей порядок формує унікальний ключ збігу.
func CanonicalPair(a, b string) (low, high string) {
	if a < b {
		return a, b
	}
	return b, a
}
