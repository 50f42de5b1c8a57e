package payments_test

import (
	"time"

	"swipenight/backend/internal/models"
	"swipenight/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateEvent(event *models.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockStorage) GetEventByID(eventID string) (*models.Event, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockStorage) SetCheckoutSession(eventID, sessionID string) error {
	args := m.Called(eventID, sessionID)
	return args.Error(0)
}

func (m *MockStorage) MarkEventPaid(eventID string, paidAt time.Time) error {
	args := m.Called(eventID, paidAt)
	return args.Error(0)
}

func (m *MockStorage) GetMember(eventID, userID string) (*models.EventMember, error) {
	args := m.Called(eventID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EventMember), args.Error(1)
}

func (m *MockStorage) CountJoinedMembers(eventID string) (int64, error) {
	args := m.Called(eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) UpsertMemberJoined(member *models.EventMember) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockStorage) SetMemberStatus(eventID, userID, status string) error {
	args := m.Called(eventID, userID, status)
	return args.Error(0)
}

func (m *MockStorage) ListJoinedMemberIDs(eventID string) ([]string, error) {
	args := m.Called(eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorage) CreateInvite(invite *models.Invite) error {
	args := m.Called(invite)
	return args.Error(0)
}

func (m *MockStorage) GetInviteByToken(token string) (*models.Invite, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invite), args.Error(1)
}

func (m *MockStorage) SaveProfileIfAbsent(profile *models.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockStorage) ListProfiles(userIDs []string) ([]models.Profile, error) {
	args := m.Called(userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Profile), args.Error(1)
}

func (m *MockStorage) InsertSwipe(swipe *models.Swipe) (storage.InsertOutcome, error) {
	args := m.Called(swipe)
	return args.Get(0).(storage.InsertOutcome), args.Error(1)
}

func (m *MockStorage) HasRightSwipe(eventID, swiperID, swipedID string) (bool, error) {
	args := m.Called(eventID, swiperID, swipedID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) ListSwipedTargets(eventID, swiperID string) ([]string, error) {
	args := m.Called(eventID, swiperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorage) InsertMatch(match *models.Match) (storage.InsertOutcome, error) {
	args := m.Called(match)
	return args.Get(0).(storage.InsertOutcome), args.Error(1)
}

func (m *MockStorage) GetMatchByPair(eventID, userLow, userHigh string) (*models.Match, error) {
	args := m.Called(eventID, userLow, userHigh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockStorage) DeleteExpiredMatches(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) PublishMatchNotice(userID string, notice models.MatchNotice) error {
	args := m.Called(userID, notice)
	return args.Error(0)
}
