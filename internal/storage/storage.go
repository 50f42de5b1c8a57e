package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"swipenight/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsertOutcome — результат insert-if-absent операції.
// "Вже існує" — очікувана гілка алгоритму, а не виняток, тому повертається
// тегованим значенням, а не помилкою.
type InsertOutcome int

const (
	OutcomeInserted InsertOutcome = iota
	OutcomeAlreadyExists
)

type Storage interface {
	// Events
	CreateEvent(event *models.Event) error
	GetEventByID(eventID string) (*models.Event, error)
	SetCheckoutSession(eventID, sessionID string) error
	MarkEventPaid(eventID string, paidAt time.Time) error

	// Members
	GetMember(eventID, userID string) (*models.EventMember, error)
	CountJoinedMembers(eventID string) (int64, error)
	UpsertMemberJoined(member *models.EventMember) error
	SetMemberStatus(eventID, userID, status string) error
	ListJoinedMemberIDs(eventID string) ([]string, error)

	// Invites
	CreateInvite(invite *models.Invite) error
	GetInviteByToken(token string) (*models.Invite, error)

	// Profiles
	SaveProfileIfAbsent(profile *models.Profile) error
	ListProfiles(userIDs []string) ([]models.Profile, error)

	// Swipes та Matches — insert-if-absent примітиви, на яких тримається
	// уся race-безпека ядра.
	InsertSwipe(swipe *models.Swipe) (InsertOutcome, error)
	HasRightSwipe(eventID, swiperID, swipedID string) (bool, error)
	ListSwipedTargets(eventID, swiperID string) ([]string, error)
	InsertMatch(match *models.Match) (InsertOutcome, error)
	GetMatchByPair(eventID, userLow, userHigh string) (*models.Match, error)
	DeleteExpiredMatches(now time.Time) (int64, error)

	// Realtime
	PublishMatchNotice(userID string, notice models.MatchNotice) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// isDuplicate розпізнає порушення унікальності, трансльоване драйвером.
// З'єднання відкривається з TranslateError, тому порушення unique-індексу
// приходить як gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// CreateEvent створює подію в PostgreSQL
func (s *Service) CreateEvent(event *models.Event) error {
	return s.DB.Create(event).Error
}

// GetEventByID повертає подію або nil, якщо її не існує.
func (s *Service) GetEventByID(eventID string) (*models.Event, error) {
	var event models.Event
	err := s.DB.Where("id = ?", eventID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get event %s: %v", eventID, err)
		return nil, err
	}
	return &event, nil
}

func (s *Service) SetCheckoutSession(eventID, sessionID string) error {
	return s.DB.Model(&models.Event{}).
		Where("id = ?", eventID).
		Update("checkout_session_id", sessionID).Error
}

// MarkEventPaid переводить подію з тестового режиму в оплачений.
func (s *Service) MarkEventPaid(eventID string, paidAt time.Time) error {
	return s.DB.Model(&models.Event{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"is_paid":      true,
			"is_test_mode": false,
			"paid_at":      paidAt,
		}).Error
}

// GetMember повертає членство або nil, якщо користувач не є учасником події.
func (s *Service) GetMember(eventID, userID string) (*models.EventMember, error) {
	var member models.EventMember
	err := s.DB.Where("event_id = ? AND user_id = ?", eventID, userID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get member %s for event %s: %v", userID, eventID, err)
		return nil, err
	}
	return &member, nil
}

// CountJoinedMembers рахує учасників зі статусом joined.
// Лічильник завжди читається з бази: кешувати його не можна,
// бо рішення про доступ має бачити актуальний стан.
func (s *Service) CountJoinedMembers(eventID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.EventMember{}).
		Where("event_id = ? AND status = ?", eventID, models.StatusJoined).
		Count(&count).Error
	return count, err
}

// UpsertMemberJoined матеріалізує членство одним атомарним upsert'ом:
// вставка, а при конфлікті за (event_id, user_id) — лише оновлення статусу.
// Жодної read-then-write послідовності.
func (s *Service) UpsertMemberJoined(member *models.EventMember) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"status": models.StatusJoined}),
	}).Create(member).Error
}

func (s *Service) SetMemberStatus(eventID, userID, status string) error {
	return s.DB.Model(&models.EventMember{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Update("status", status).Error
}

// ListJoinedMemberIDs повертає ідентифікатори всіх joined-учасників події.
func (s *Service) ListJoinedMemberIDs(eventID string) ([]string, error) {
	var userIDs []string
	err := s.DB.Model(&models.EventMember{}).
		Where("event_id = ? AND status = ?", eventID, models.StatusJoined).
		Pluck("user_id", &userIDs).Error
	if err != nil {
		log.Printf("ERROR: Failed to list joined members for event %s: %v", eventID, err)
		return nil, err
	}
	return userIDs, nil
}

// CreateInvite зберігає токен запрошення в PostgreSQL
func (s *Service) CreateInvite(invite *models.Invite) error {
	return s.DB.Create(invite).Error
}

// GetInviteByToken повертає запрошення або nil, якщо токен невідомий.
func (s *Service) GetInviteByToken(token string) (*models.Invite, error) {
	var invite models.Invite
	err := s.DB.Where("token = ?", token).First(&invite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get invite by token: %v", err)
		return nil, err
	}
	return &invite, nil
}

// SaveProfileIfAbsent створює профіль, якщо його ще немає; існуючий не чіпає.
func (s *Service) SaveProfileIfAbsent(profile *models.Profile) error {
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(profile).Error
}

func (s *Service) ListProfiles(userIDs []string) ([]models.Profile, error) {
	var profiles []models.Profile
	if len(userIDs) == 0 {
		return profiles, nil
	}
	err := s.DB.Where("user_id IN ?", userIDs).Order("display_name asc").Find(&profiles).Error
	if err != nil {
		log.Printf("ERROR: Failed to list profiles: %v", err)
		return nil, err
	}
	return profiles, nil
}

// InsertSwipe вставляє свайп; дублікат трійки повертається як OutcomeAlreadyExists.
func (s *Service) InsertSwipe(swipe *models.Swipe) (InsertOutcome, error) {
	if err := s.DB.Create(swipe).Error; err != nil {
		if isDuplicate(err) {
			return OutcomeAlreadyExists, nil
		}
		log.Printf("ERROR: Failed to insert swipe for event %s: %v", swipe.EventID, err)
		return 0, err
	}
	return OutcomeInserted, nil
}

// HasRightSwipe перевіряє наявність правого свайпу swiper → swiped.
func (s *Service) HasRightSwipe(eventID, swiperID, swipedID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Swipe{}).
		Where("event_id = ? AND swiper_id = ? AND swiped_id = ? AND direction = ?",
			eventID, swiperID, swipedID, models.DirectionRight).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListSwipedTargets повертає, кого swiper вже оцінив у цій події.
func (s *Service) ListSwipedTargets(eventID, swiperID string) ([]string, error) {
	var targets []string
	err := s.DB.Model(&models.Swipe{}).
		Where("event_id = ? AND swiper_id = ?", eventID, swiperID).
		Pluck("swiped_id", &targets).Error
	return targets, err
}

// InsertMatch вставляє збіг за канонічним ключем; програш у гонці
// з дзеркальним запитом повертається як OutcomeAlreadyExists.
func (s *Service) InsertMatch(match *models.Match) (InsertOutcome, error) {
	if err := s.DB.Create(match).Error; err != nil {
		if isDuplicate(err) {
			return OutcomeAlreadyExists, nil
		}
		log.Printf("ERROR: Failed to insert match for event %s: %v", match.EventID, err)
		return 0, err
	}
	return OutcomeInserted, nil
}

// GetMatchByPair — точкове читання збігу за канонічним ключем пари.
func (s *Service) GetMatchByPair(eventID, userLow, userHigh string) (*models.Match, error) {
	var match models.Match
	err := s.DB.Where("event_id = ? AND user_low = ? AND user_high = ?",
		eventID, userLow, userHigh).First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("ERROR: Failed to get match for event %s: %v", eventID, err)
		return nil, err
	}
	return &match, nil
}

// DeleteExpiredMatches прибирає збіги, термін яких минув. Викликається
// оператором (cmd/admin), а не ядром.
func (s *Service) DeleteExpiredMatches(now time.Time) (int64, error) {
	result := s.DB.Where("expires_at < ?", now).Delete(&models.Match{})
	if result.Error != nil {
		log.Printf("ERROR: Failed to delete expired matches: %v", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// PublishMatchNotice публікує сповіщення про збіг у Redis Pub/Sub.
// Канал іменується за отримувачем, щоб хаб міг адресно роздати повідомлення.
func (s *Service) PublishMatchNotice(userID string, notice models.MatchNotice) error {
	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}

	if err := s.Redis.Publish(s.Ctx, "match:"+userID, string(payload)).Err(); err != nil {
		return err
	}

	return nil
}
