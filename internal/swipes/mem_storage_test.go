package swipes_test

import (
	"strings"
	"sync"
	"time"

	"swipenight/backend/internal/models"
	"swipenight/backend/internal/storage"

	"github.com/google/uuid"
)

// memStorage — потокобезпечна in-memory реалізація storage.Storage.
// Відтворює контракт insert-if-absent так само, як це робить unique-індекс
// у PostgreSQL, що дозволяє детерміновано тестувати гонку взаємних свайпів.
type memStorage struct {
	mu          sync.Mutex
	events      map[string]models.Event
	members     map[string]models.EventMember
	invites     map[string]models.Invite
	profiles    map[string]models.Profile
	swipes      map[string]models.Swipe
	matches     map[string]models.Match
	notices     map[string][]models.MatchNotice
	nextSwipeID uint
}

func newMemStorage() *memStorage {
	return &memStorage{
		events:   make(map[string]models.Event),
		members:  make(map[string]models.EventMember),
		invites:  make(map[string]models.Invite),
		profiles: make(map[string]models.Profile),
		swipes:   make(map[string]models.Swipe),
		matches:  make(map[string]models.Match),
		notices:  make(map[string][]models.MatchNotice),
	}
}

func memberKey(eventID, userID string) string {
	return strings.Join([]string{eventID, userID}, "|")
}

func swipeKey(eventID, swiperID, swipedID string) string {
	return strings.Join([]string{eventID, swiperID, swipedID}, "|")
}

func matchKey(eventID, userLow, userHigh string) string {
	return strings.Join([]string{eventID, userLow, userHigh}, "|")
}

func (m *memStorage) CreateEvent(event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	m.events[event.ID] = *event
	return nil
}

func (m *memStorage) GetEventByID(eventID string) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	event, ok := m.events[eventID]
	if !ok {
		return nil, nil
	}
	return &event, nil
}

func (m *memStorage) SetCheckoutSession(eventID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	event, ok := m.events[eventID]
	if ok {
		event.CheckoutSessionID = sessionID
		m.events[eventID] = event
	}
	return nil
}

func (m *memStorage) MarkEventPaid(eventID string, paidAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	event, ok := m.events[eventID]
	if ok {
		event.IsPaid = true
		event.IsTestMode = false
		event.PaidAt = &paidAt
		m.events[eventID] = event
	}
	return nil
}

func (m *memStorage) GetMember(eventID, userID string) (*models.EventMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	member, ok := m.members[memberKey(eventID, userID)]
	if !ok {
		return nil, nil
	}
	return &member, nil
}

func (m *memStorage) CountJoinedMembers(eventID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, member := range m.members {
		if member.EventID == eventID && member.Status == models.StatusJoined {
			count++
		}
	}
	return count, nil
}

func (m *memStorage) UpsertMemberJoined(member *models.EventMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := memberKey(member.EventID, member.UserID)
	if existing, ok := m.members[key]; ok {
		existing.Status = models.StatusJoined
		m.members[key] = existing
		return nil
	}
	m.members[key] = *member
	return nil
}

func (m *memStorage) SetMemberStatus(eventID, userID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := memberKey(eventID, userID)
	if member, ok := m.members[key]; ok {
		member.Status = status
		m.members[key] = member
	}
	return nil
}

func (m *memStorage) ListJoinedMemberIDs(eventID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for _, member := range m.members {
		if member.EventID == eventID && member.Status == models.StatusJoined {
			ids = append(ids, member.UserID)
		}
	}
	return ids, nil
}

func (m *memStorage) CreateInvite(invite *models.Invite) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invites[invite.Token] = *invite
	return nil
}

func (m *memStorage) GetInviteByToken(token string) (*models.Invite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	invite, ok := m.invites[token]
	if !ok {
		return nil, nil
	}
	return &invite, nil
}

func (m *memStorage) SaveProfileIfAbsent(profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[profile.UserID]; !ok {
		m.profiles[profile.UserID] = *profile
	}
	return nil
}

func (m *memStorage) ListProfiles(userIDs []string) ([]models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var profiles []models.Profile
	for _, id := range userIDs {
		if profile, ok := m.profiles[id]; ok {
			profiles = append(profiles, profile)
		}
	}
	return profiles, nil
}

// InsertSwipe відтворює поведінку unique-індексу на трійці свайпу.
func (m *memStorage) InsertSwipe(swipe *models.Swipe) (storage.InsertOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := swipeKey(swipe.EventID, swipe.SwiperID, swipe.SwipedID)
	if _, ok := m.swipes[key]; ok {
		return storage.OutcomeAlreadyExists, nil
	}
	m.nextSwipeID++
	swipe.ID = m.nextSwipeID
	m.swipes[key] = *swipe
	return storage.OutcomeInserted, nil
}

func (m *memStorage) HasRightSwipe(eventID, swiperID, swipedID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	swipe, ok := m.swipes[swipeKey(eventID, swiperID, swipedID)]
	return ok && swipe.Direction == models.DirectionRight, nil
}

func (m *memStorage) ListSwipedTargets(eventID, swiperID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var targets []string
	for _, swipe := range m.swipes {
		if swipe.EventID == eventID && swipe.SwiperID == swiperID {
			targets = append(targets, swipe.SwipedID)
		}
	}
	return targets, nil
}

// InsertMatch відтворює поведінку unique-індексу на канонічній парі.
func (m *memStorage) InsertMatch(match *models.Match) (storage.InsertOutcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := matchKey(match.EventID, match.UserLow, match.UserHigh)
	if _, ok := m.matches[key]; ok {
		return storage.OutcomeAlreadyExists, nil
	}
	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	m.matches[key] = *match
	return storage.OutcomeInserted, nil
}

func (m *memStorage) GetMatchByPair(eventID, userLow, userHigh string) (*models.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	match, ok := m.matches[matchKey(eventID, userLow, userHigh)]
	if !ok {
		return nil, nil
	}
	return &match, nil
}

func (m *memStorage) DeleteExpiredMatches(now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for key, match := range m.matches {
		if match.ExpiresAt.Before(now) {
			delete(m.matches, key)
			removed++
		}
	}
	return removed, nil
}

func (m *memStorage) PublishMatchNotice(userID string, notice models.MatchNotice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notices[userID] = append(m.notices[userID], notice)
	return nil
}

// matchCount повертає кількість збігів у сховищі (для асертів).
func (m *memStorage) matchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.matches)
}

// swipeCount повертає кількість свайпів у сховищі (для асертів).
func (m *memStorage) swipeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.swipes)
}

// soleMatch повертає єдиний збіг у сховищі.
func (m *memStorage) soleMatch() *models.Match {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, match := range m.matches {
		return &match
	}
	return nil
}
