package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event — часове вікно, в межах якого учасники свайпають одне одного.
// Неоплачена подія живе в тестовому режимі з лімітом учасників.
type Event struct {
	ID                  string     `gorm:"primaryKey" json:"id"`
	Name                string     `json:"name"`
	CreatedBy           string     `gorm:"index" json:"created_by"`
	Timezone            string     `json:"timezone"`
	SwipeStartAt        time.Time  `json:"swipe_start_at"`
	SwipeEndAt          time.Time  `json:"swipe_end_at"`
	IsPaid              bool       `json:"is_paid"`
	IsTestMode          bool       `json:"is_test_mode"`
	TestModeAttendeeCap int        `json:"test_mode_attendee_cap"`
	MatchExpiresDays    int        `json:"match_expires_days"`
	CheckoutSessionID   string     `json:"-"`
	PaidAt              *time.Time `json:"paid_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// BeforeCreate — хук GORM, генерує UUID, якщо ID ще не встановлено.
func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}
