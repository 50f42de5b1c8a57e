package swipes

import (
	"errors"
	"fmt"
	"log"
	"time"

	"swipenight/backend/internal/models"
	"swipenight/backend/internal/storage"
)

// detectMatch шукає дзеркальний правий свайп і матеріалізує Match рівно один раз.
//
// Race-closing крок: якщо вставка за канонічним ключем програла конкурентному
// дзеркальному запиту, збіг перечитується за тим самим ключем — обидва запити
// повертають один і той самий match id, незалежно від того, чия вставка "виграла".
func (s *Service) detectMatch(event *models.Event, swiperID, swipedID string) (bool, string, error) {
	reciprocal, err := s.Storage.HasRightSwipe(event.ID, swipedID, swiperID)
	if err != nil {
		return false, "", fmt.Errorf("reciprocal lookup: %w", err)
	}
	if !reciprocal {
		return false, "", nil
	}

	low, high := models.CanonicalPair(swiperID, swipedID)
	match := &models.Match{
		EventID:   event.ID,
		UserLow:   low,
		UserHigh:  high,
		ExpiresAt: MatchExpiry(event.SwipeEndAt, event.MatchExpiresDays),
	}

	outcome, err := s.Storage.InsertMatch(match)
	if err != nil {
		return false, "", fmt.Errorf("match insert: %w", err)
	}

	if outcome == storage.OutcomeAlreadyExists {
		existing, err := s.Storage.GetMatchByPair(event.ID, low, high)
		if err != nil {
			return false, "", fmt.Errorf("match lookup: %w", err)
		}
		if existing == nil {
			return false, "", errors.New("match row missing after duplicate insert")
		}
		return true, existing.ID, nil
	}

	s.notifyPair(event.ID, match)
	return true, match.ID, nil
}

// MatchExpiry обчислює момент протухання збігу: кінець вікна свайпів
// плюс задана кількість календарних днів у UTC.
func MatchExpiry(swipeEndAt time.Time, days int) time.Time {
	return swipeEndAt.UTC().AddDate(0, 0, days)
}

// notifyPair надсилає realtime-сповіщення обом учасникам пари.
// Best-effort: невдала публікація не провалює запит, який створив збіг.
func (s *Service) notifyPair(eventID string, match *models.Match) {
	pairs := [][2]string{
		{match.UserLow, match.UserHigh},
		{match.UserHigh, match.UserLow},
	}
	for _, p := range pairs {
		notice := models.MatchNotice{
			Type:      "match_found",
			EventID:   eventID,
			MatchID:   match.ID,
			PartnerID: p[1],
			ExpiresAt: match.ExpiresAt,
		}
		if err := s.Storage.PublishMatchNotice(p[0], notice); err != nil {
			log.Printf("ERROR: Failed to publish match notice for user %s: %v", p[0], err)
		}
	}
}
