package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type swipeRequest struct {
	EventID   string `json:"event_id"`
	SwipedID  string `json:"swiped_id"`
	Direction string `json:"direction"`
}

// SubmitSwipe — POST /swipe. Єдина операція ядра: гейт, запис, детекція збігу.
func (h *Handler) SubmitSwipe(c *gin.Context) {
	var req swipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_JSON"})
		return
	}

	userID := c.GetString("user_id")

	result, err := h.Swipes.SubmitSwipe(req.EventID, userID, req.SwipedID, req.Direction)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"ok": true, "matched": result.Matched}
	if result.MatchID != "" {
		resp["match_id"] = result.MatchID
	}
	c.JSON(http.StatusOK, resp)
}

// ListCandidates — GET /events/:id/candidates. Кого ще можна свайпнути.
func (h *Handler) ListCandidates(c *gin.Context) {
	eventID := c.Param("id")
	userID := c.GetString("user_id")

	profiles, err := h.Swipes.ListCandidates(eventID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": profiles})
}
