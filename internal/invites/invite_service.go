// Package invites handles event creation through invite minting and the
// redemption flow that turns a token into a joined membership.
package invites

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"swipenight/backend/internal/config"
	"swipenight/backend/internal/models"
	"swipenight/backend/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrInvalidInvite = errors.New("invite token is unknown")
	ErrInviteExpired = errors.New("invite token has expired")
	ErrBlocked       = errors.New("member is blocked")
)

// Service handles the business logic for invites.
type Service struct {
	Storage storage.Storage

	// Now підміняється в тестах.
	Now func() time.Time
}

// NewService creates a new invite service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s, Now: time.Now}
}

// MintParams — необов'язкові параметри створення події.
// Незадані поля добираються дефолтами з config.
type MintParams struct {
	Name         string
	Timezone     string
	SwipeStartAt *time.Time
	SwipeEndAt   *time.Time
	IsPaid       *bool
}

// MintResult — створена подія разом із токеном запрошення.
type MintResult struct {
	InviteToken string
	Event       *models.Event
}

// MintInvite створює подію, токен запрошення та членство адміністратора
// для автора. Випадкове засіювання учасників сюди свідомо не входить.
func (s *Service) MintInvite(userID string, p MintParams) (*MintResult, error) {
	now := s.Now().UTC()

	start := now.Add(-config.DefaultSwipeLeadTime)
	if p.SwipeStartAt != nil {
		start = p.SwipeStartAt.UTC()
	}
	end := now.Add(config.DefaultSwipeDuration)
	if p.SwipeEndAt != nil {
		end = p.SwipeEndAt.UTC()
	}

	name := p.Name
	if name == "" {
		name = config.DefaultEventName
	}
	timezone := p.Timezone
	if timezone == "" {
		timezone = config.DefaultTimezone
	}
	isPaid := true
	if p.IsPaid != nil {
		isPaid = *p.IsPaid
	}

	event := &models.Event{
		Name:                name,
		CreatedBy:           userID,
		Timezone:            timezone,
		SwipeStartAt:        start,
		SwipeEndAt:          end,
		IsPaid:              isPaid,
		IsTestMode:          !isPaid,
		TestModeAttendeeCap: config.DefaultAttendeeCap,
		MatchExpiresDays:    config.DefaultMatchExpiresDays,
	}
	if err := s.Storage.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("event create: %w", err)
	}

	invite := &models.Invite{
		Token:     randomToken(),
		EventID:   event.ID,
		CreatedBy: userID,
	}
	if err := s.Storage.CreateInvite(invite); err != nil {
		return nil, fmt.Errorf("invite create: %w", err)
	}

	creator := &models.EventMember{
		EventID:  event.ID,
		UserID:   userID,
		Role:     models.RoleAdmin,
		Status:   models.StatusJoined,
		JoinedAt: now,
	}
	if err := s.Storage.UpsertMemberJoined(creator); err != nil {
		return nil, fmt.Errorf("membership create: %w", err)
	}

	return &MintResult{InviteToken: invite.Token, Event: event}, nil
}

// JoinParams — дані профілю, які учасник подає разом із токеном.
type JoinParams struct {
	DisplayName string
	Interests   []string
}

// Join перетворює валідний токен на joined-членство. Повторний вхід того
// самого користувача нешкідливий: членство матеріалізується одним атомарним
// upsert'ом, роль існуючого учасника зберігається.
func (s *Service) Join(userID, token string, p JoinParams) (*models.Event, error) {
	invite, err := s.Storage.GetInviteByToken(token)
	if err != nil {
		return nil, fmt.Errorf("invite lookup: %w", err)
	}
	if invite == nil {
		return nil, ErrInvalidInvite
	}
	if invite.ExpiresAt != nil && invite.ExpiresAt.Before(s.Now()) {
		return nil, ErrInviteExpired
	}

	event, err := s.Storage.GetEventByID(invite.EventID)
	if err != nil {
		return nil, fmt.Errorf("event lookup: %w", err)
	}
	if event == nil {
		return nil, ErrInvalidInvite
	}

	existing, err := s.Storage.GetMember(event.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("membership lookup: %w", err)
	}
	if existing != nil && existing.Status == models.StatusBlocked {
		return nil, ErrBlocked
	}

	role := models.RoleAttendee
	if existing != nil {
		role = existing.Role
	}
	member := &models.EventMember{
		EventID:  event.ID,
		UserID:   userID,
		Role:     role,
		Status:   models.StatusJoined,
		JoinedAt: s.Now().UTC(),
	}
	if err := s.Storage.UpsertMemberJoined(member); err != nil {
		return nil, fmt.Errorf("membership upsert: %w", err)
	}

	displayName := p.DisplayName
	if displayName == "" {
		displayName = "Guest"
	}
	profile := &models.Profile{
		UserID:      userID,
		DisplayName: displayName,
		Interests:   pq.StringArray(p.Interests),
	}
	if err := s.Storage.SaveProfileIfAbsent(profile); err != nil {
		return nil, fmt.Errorf("profile create: %w", err)
	}

	return event, nil
}

// randomToken — UUID без дефісів, достатньо ентропії для одноразового токена.
func randomToken() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
