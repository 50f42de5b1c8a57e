package swipes

import (
	"fmt"

	"swipenight/backend/internal/models"
)

// ListCandidates повертає профілі joined-учасників події, яких користувач
// ще не оцінював. Доступ тут перевіряється лише на рівні членства:
// переглядати учасників можна й поза вікном свайпів.
func (s *Service) ListCandidates(eventID, userID string) ([]models.Profile, error) {
	member, err := s.Storage.GetMember(eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("membership lookup: %w", err)
	}
	if member == nil {
		return nil, ErrNotMember
	}
	if member.Status == models.StatusBlocked {
		return nil, ErrBlocked
	}

	joined, err := s.Storage.ListJoinedMemberIDs(eventID)
	if err != nil {
		return nil, fmt.Errorf("member listing: %w", err)
	}

	swiped, err := s.Storage.ListSwipedTargets(eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("swipe listing: %w", err)
	}
	seen := make(map[string]bool, len(swiped)+1)
	seen[userID] = true
	for _, target := range swiped {
		seen[target] = true
	}

	candidates := make([]string, 0, len(joined))
	for _, id := range joined {
		if !seen[id] {
			candidates = append(candidates, id)
		}
	}

	profiles, err := s.Storage.ListProfiles(candidates)
	if err != nil {
		return nil, fmt.Errorf("profile listing: %w", err)
	}
	return profiles, nil
}
