// Package payments integrates Stripe Checkout: admins pay to unlock an event,
// and the webhook flips the event out of test mode once the session completes.
package payments

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"swipenight/backend/internal/alerts"
	"swipenight/backend/internal/models"
	"swipenight/backend/internal/storage"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrForbidden        = errors.New("caller is not an event admin")
	ErrInvalidSignature = errors.New("webhook signature is invalid")
	ErrMissingEventID   = errors.New("webhook session has no event id")
)

// Config — ключі та адреси Stripe-інтеграції.
type Config struct {
	SecretKey     string
	PriceID       string
	WebhookSecret string
	AppURL        string
}

// Service handles the business logic for event payments.
type Service struct {
	Storage storage.Storage
	Alerts  *alerts.Notifier
	cfg     Config
}

// NewService creates a new payment service and sets the Stripe API key.
func NewService(s storage.Storage, n *alerts.Notifier, cfg Config) *Service {
	stripe.Key = cfg.SecretKey
	return &Service{Storage: s, Alerts: n, cfg: cfg}
}

// CreateCheckout створює Stripe Checkout-сесію для події. Дозволено лише
// авторові події або joined-адміністратору.
func (s *Service) CreateCheckout(eventID, userID string) (string, error) {
	event, err := s.Storage.GetEventByID(eventID)
	if err != nil {
		return "", fmt.Errorf("event lookup: %w", err)
	}
	if event == nil {
		return "", ErrEventNotFound
	}

	isAdmin := event.CreatedBy == userID
	if !isAdmin {
		member, err := s.Storage.GetMember(eventID, userID)
		if err != nil {
			return "", fmt.Errorf("membership lookup: %w", err)
		}
		isAdmin = member != nil &&
			member.Role == models.RoleAdmin &&
			member.Status == models.StatusJoined
	}
	if !isAdmin {
		return "", ErrForbidden
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.cfg.AppURL + "/payment-success?event_id=" + eventID),
		CancelURL:  stripe.String(s.cfg.AppURL + "/payment-cancelled?event_id=" + eventID),
	}
	params.AddMetadata("event_id", eventID)

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("checkout session create: %w", err)
	}
	if sess.URL == "" {
		return "", errors.New("checkout session has no URL")
	}

	if err := s.Storage.SetCheckoutSession(eventID, sess.ID); err != nil {
		return "", fmt.Errorf("checkout session store: %w", err)
	}

	return sess.URL, nil
}

// HandleWebhook перевіряє підпис Stripe і передає верифіковану подію
// в ProcessEvent.
func (s *Service) HandleWebhook(payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.WebhookSecret)
	if err != nil {
		return ErrInvalidSignature
	}
	return s.ProcessEvent(event)
}

// ProcessEvent обробляє завершення оплати: подія переводиться з тестового
// режиму в оплачений. Інші типи подій підтверджуються без дій.
func (s *Service) ProcessEvent(event stripe.Event) error {
	if event.Type != "checkout.session.completed" {
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("session decode: %w", err)
	}

	eventID := sess.Metadata["event_id"]
	if eventID == "" {
		return ErrMissingEventID
	}

	if err := s.Storage.MarkEventPaid(eventID, time.Now().UTC()); err != nil {
		s.Alerts.WebhookFailure(eventID, err)
		return fmt.Errorf("event update: %w", err)
	}

	log.Printf("INFO: Event %s marked as paid.", eventID)
	s.Alerts.EventPaid(eventID)
	return nil
}
