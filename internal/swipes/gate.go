package swipes

import (
	"time"

	"swipenight/backend/internal/models"
)

// Authorize — єдине рішення "пускати чи ні" для однієї спроби свайпу.
// Порядок перевірок визначає, яка саме відмова повертається: членство,
// блокування, ліміт, вікно. Без побічних ефектів, безпечно викликати
// повторно та конкурентно.
func Authorize(member *models.EventMember, event *models.Event, joinedCount int64, now time.Time) error {
	if member == nil {
		return ErrNotMember
	}
	if member.Status == models.StatusBlocked {
		return ErrBlocked
	}
	if !Unlocked(event.IsPaid, event.IsTestMode, event.TestModeAttendeeCap, joinedCount) {
		return ErrEventLocked
	}
	if !WithinWindow(now, event.SwipeStartAt, event.SwipeEndAt) {
		return ErrOutsideWindow
	}
	return nil
}
