package handler

import (
	"swipenight/backend/internal/invites"
	"swipenight/backend/internal/notify"
	"swipenight/backend/internal/payments"
	"swipenight/backend/internal/swipes"
)

// Handler містить залежності API-шару
type Handler struct {
	Swipes   *swipes.Service
	Invites  *invites.Service
	Payments *payments.Service
	Hub      *notify.Hub
}

func NewHandler(sw *swipes.Service, inv *invites.Service, pay *payments.Service, hub *notify.Hub) *Handler {
	return &Handler{Swipes: sw, Invites: inv, Payments: pay, Hub: hub}
}
