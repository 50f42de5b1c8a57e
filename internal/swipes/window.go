package swipes

import "time"

// WithinWindow перевіряє, чи потрапляє момент now у вікно свайпів.
// Обидві межі включні: свайп рівно о swipe_start_at або swipe_end_at дозволений.
func WithinWindow(now, start, end time.Time) bool {
	return !now.Before(start) && !now.After(end)
}
