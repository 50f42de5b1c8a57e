package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	EventID string `json:"event_id"`
}

// CreateCheckout — POST /checkout. Лише адміністратор події може почати оплату.
func (h *Handler) CreateCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_JSON"})
		return
	}
	if req.EventID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "MISSING_EVENT_ID"})
		return
	}

	userID := c.GetString("user_id")

	checkoutURL, err := h.Payments.CreateCheckout(req.EventID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout_url": checkoutURL})
}

// StripeWebhook — POST /stripe/webhook. Без авторизації: автентичність
// гарантує підпис у заголовку Stripe-Signature.
func (h *Handler) StripeWebhook(c *gin.Context) {
	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "MISSING_SIGNATURE"})
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_PAYLOAD"})
		return
	}

	if err := h.Payments.HandleWebhook(payload, signature); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
