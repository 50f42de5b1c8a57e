package swipes

import (
	"fmt"

	"swipenight/backend/internal/models"
	"swipenight/backend/internal/storage"
)

// RecordOutcome — класифікація запису свайпу.
type RecordOutcome int

const (
	Recorded RecordOutcome = iota
	AlreadyRecorded
)

// recordSwipe ідемпотентно записує один спрямований свайп.
// Дублікат розпізнається через порушення унікальності трійки в базі,
// а не через попереднє читання — інакше між читанням і записом була б гонка.
func (s *Service) recordSwipe(eventID, swiperID, swipedID, direction string) (RecordOutcome, error) {
	swipe := &models.Swipe{
		EventID:   eventID,
		SwiperID:  swiperID,
		SwipedID:  swipedID,
		Direction: direction,
	}

	outcome, err := s.Storage.InsertSwipe(swipe)
	if err != nil {
		return 0, fmt.Errorf("swipe insert: %w", err)
	}
	if outcome == storage.OutcomeAlreadyExists {
		return AlreadyRecorded, nil
	}
	return Recorded, nil
}
