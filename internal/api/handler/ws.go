package handler

import (
	"net/http"

	"swipenight/backend/internal/models"
	"swipenight/backend/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Дозволяє з'єднання з будь-якого домену. У продакшені налаштувати!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket оновлює HTTP-з'єднання до WebSocket і підписує користувача
// на його match-сповіщення. Токен приймається з заголовка або з query,
// бо браузерний WebSocket API не дозволяє власних заголовків.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	userID, err := bearerUserID(c)
	if err != nil {
		if token := c.Query("token"); token != "" {
			userID, err = validateAndGetUserID(token)
		}
	}
	if err != nil || userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "INVALID_AUTH"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "UPGRADE_FAILED"})
		return
	}

	client := &notify.Client{
		UserID: userID,
		Conn:   conn,
		Hub:    h.Hub,
		Send:   make(chan models.MatchNotice, 256),
	}

	h.Hub.Register(client)
	client.Run()
}
