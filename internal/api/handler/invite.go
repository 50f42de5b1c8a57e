package handler

import (
	"net/http"
	"time"

	"swipenight/backend/internal/invites"

	"github.com/gin-gonic/gin"
)

type mintRequest struct {
	Name         string     `json:"name"`
	Timezone     string     `json:"timezone"`
	SwipeStartAt *time.Time `json:"swipe_start_at"`
	SwipeEndAt   *time.Time `json:"swipe_end_at"`
	IsPaid       *bool      `json:"is_paid"`
}

// MintInvite — POST /invites. Створює подію та повертає токен запрошення.
// Тіло запиту необов'язкове: незадані поля добираються дефолтами.
func (h *Handler) MintInvite(c *gin.Context) {
	var req mintRequest
	// Порожнє тіло допустиме, невалідний JSON — ні.
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_JSON"})
		return
	}

	userID := c.GetString("user_id")

	result, err := h.Invites.MintInvite(userID, invites.MintParams{
		Name:         req.Name,
		Timezone:     req.Timezone,
		SwipeStartAt: req.SwipeStartAt,
		SwipeEndAt:   req.SwipeEndAt,
		IsPaid:       req.IsPaid,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	event := result.Event
	c.JSON(http.StatusOK, gin.H{
		"invite_token":           result.InviteToken,
		"event_id":               event.ID,
		"event_name":             event.Name,
		"swipe_start_at":         event.SwipeStartAt,
		"swipe_end_at":           event.SwipeEndAt,
		"timezone":               event.Timezone,
		"is_paid":                event.IsPaid,
		"is_test_mode":           event.IsTestMode,
		"test_mode_attendee_cap": event.TestModeAttendeeCap,
	})
}

type joinRequest struct {
	Token       string   `json:"token"`
	DisplayName string   `json:"display_name"`
	Interests   []string `json:"interests"`
}

// JoinEvent — POST /join. Обмінює токен запрошення на joined-членство.
func (h *Handler) JoinEvent(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_JSON"})
		return
	}
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "MISSING_TOKEN"})
		return
	}

	userID := c.GetString("user_id")

	event, err := h.Invites.Join(userID, req.Token, invites.JoinParams{
		DisplayName: req.DisplayName,
		Interests:   req.Interests,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event_id":               event.ID,
		"event_name":             event.Name,
		"swipe_start_at":         event.SwipeStartAt,
		"swipe_end_at":           event.SwipeEndAt,
		"timezone":               event.Timezone,
		"is_paid":                event.IsPaid,
		"is_test_mode":           event.IsTestMode,
		"test_mode_attendee_cap": event.TestModeAttendeeCap,
	})
}
