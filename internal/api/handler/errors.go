package handler

import (
	"errors"
	"log"
	"net/http"

	"swipenight/backend/internal/invites"
	"swipenight/backend/internal/payments"
	"swipenight/backend/internal/swipes"

	"github.com/gin-gonic/gin"
)

// respondError мапить доменні помилки на HTTP-статуси та коди помилок.
// Усе, що не розпізнано — відмова залежності, деталі лишаються в логах.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, swipes.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_INPUT"})
	case errors.Is(err, swipes.ErrInvalidTarget):
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_TARGET"})
	case errors.Is(err, swipes.ErrNotMember):
		c.JSON(http.StatusForbidden, gin.H{"error": "NOT_MEMBER"})
	case errors.Is(err, swipes.ErrBlocked), errors.Is(err, invites.ErrBlocked):
		c.JSON(http.StatusForbidden, gin.H{"error": "BLOCKED"})
	case errors.Is(err, swipes.ErrEventNotFound), errors.Is(err, payments.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "EVENT_NOT_FOUND"})
	case errors.Is(err, swipes.ErrEventLocked):
		c.JSON(http.StatusForbidden, gin.H{"error": "EVENT_LOCKED"})
	case errors.Is(err, swipes.ErrOutsideWindow):
		c.JSON(http.StatusForbidden, gin.H{"error": "OUTSIDE_WINDOW"})
	case errors.Is(err, swipes.ErrAlreadySwiped):
		c.JSON(http.StatusConflict, gin.H{"error": "ALREADY_SWIPED"})
	case errors.Is(err, invites.ErrInvalidInvite):
		c.JSON(http.StatusNotFound, gin.H{"error": "INVALID_INVITE"})
	case errors.Is(err, invites.ErrInviteExpired):
		c.JSON(http.StatusGone, gin.H{"error": "INVITE_EXPIRED"})
	case errors.Is(err, payments.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "FORBIDDEN"})
	case errors.Is(err, payments.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_SIGNATURE"})
	case errors.Is(err, payments.ErrMissingEventID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "MISSING_EVENT_ID"})
	default:
		log.Printf("ERROR: Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "DEPENDENCY_FAILED"})
	}
}
