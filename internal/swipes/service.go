// Package swipes implements the swipe gating and mutual-match detection core.
// All cross-request state lives in the persistence layer: the service keeps no
// in-memory caches, and every race-sensitive step is built on the storage
// layer's insert-if-absent primitives.
package swipes

import (
	"fmt"
	"log"
	"time"

	"swipenight/backend/internal/models"
	"swipenight/backend/internal/storage"
)

// Service — оркестратор одного свайпу: гейт → запис → детекція збігу.
type Service struct {
	Storage storage.Storage

	// Now підміняється в тестах для контролю вікна свайпів.
	Now func() time.Time
}

// NewService creates a new swipe service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s, Now: time.Now}
}

// Result — результат успішно прийнятого свайпу.
type Result struct {
	Matched bool
	MatchID string
}

// SubmitSwipe приймає один свайп: валідація, гейт доступу (свіжі читання
// членства, події та лічильника на кожен виклик), ідемпотентний запис,
// і для першого правого свайпу — детекція взаємності.
func (s *Service) SubmitSwipe(eventID, swiperID, swipedID, direction string) (*Result, error) {
	if eventID == "" || swiperID == "" || swipedID == "" {
		return nil, ErrInvalidInput
	}
	if direction != models.DirectionLeft && direction != models.DirectionRight {
		return nil, ErrInvalidInput
	}
	if swiperID == swipedID {
		return nil, ErrInvalidTarget
	}

	member, err := s.Storage.GetMember(eventID, swiperID)
	if err != nil {
		return nil, fmt.Errorf("membership lookup: %w", err)
	}
	if member == nil {
		return nil, ErrNotMember
	}

	event, err := s.Storage.GetEventByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("event lookup: %w", err)
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	joined, err := s.Storage.CountJoinedMembers(eventID)
	if err != nil {
		return nil, fmt.Errorf("joined count: %w", err)
	}

	if err := Authorize(member, event, joined, s.Now().UTC()); err != nil {
		return nil, err
	}

	outcome, err := s.recordSwipe(eventID, swiperID, swipedID, direction)
	if err != nil {
		return nil, err
	}

	if outcome == AlreadyRecorded {
		// Записане рішення термінальне, тому напрямок береться зі сховища,
		// а не з повторного запиту: записаний лівий свайп ніколи не стає
		// збігом. Якщо ж записано правий — попередній ідентичний запит міг
		// обірватися між записом і детекцією; детекція ідемпотентна, тому
		// ретрай доганяє її тут, але сам дублікат все одно повертається
		// як конфлікт.
		storedRight, err := s.Storage.HasRightSwipe(eventID, swiperID, swipedID)
		if err != nil {
			log.Printf("ERROR: Stored swipe lookup failed for event %s: %v", eventID, err)
		} else if storedRight {
			if _, _, err := s.detectMatch(event, swiperID, swipedID); err != nil {
				log.Printf("ERROR: Match detection on duplicate swipe failed for event %s: %v", eventID, err)
			}
		}
		return nil, ErrAlreadySwiped
	}

	if direction != models.DirectionRight {
		return &Result{Matched: false}, nil
	}

	matched, matchID, err := s.detectMatch(event, swiperID, swipedID)
	if err != nil {
		return nil, err
	}
	return &Result{Matched: matched, MatchID: matchID}, nil
}
