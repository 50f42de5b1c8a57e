// Package notify fans match notices out to connected websocket clients.
// Notices travel through Redis Pub/Sub, so every server instance sees them
// regardless of which instance handled the swipe that closed the match.
package notify

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"swipenight/backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// Hub утримує активні websocket-з'єднання, згруповані за користувачем.
// Один користувач може мати кілька вкладок — усі отримують сповіщення.
type Hub struct {
	Redis *redis.Client

	mu      sync.RWMutex
	clients map[string]map[*Client]bool
}

// NewHub creates a new notification hub.
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		Redis:   rdb,
		clients: make(map[string]map[*Client]bool),
	}
}

// Register додає з'єднання користувача до хаба.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*Client]bool)
	}
	h.clients[c.UserID][c] = true
}

// Unregister прибирає з'єднання та закриває його канал надсилання.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[c.UserID]; ok {
		if conns[c] {
			delete(conns, c)
			close(c.Send)
		}
		if len(conns) == 0 {
			delete(h.clients, c.UserID)
		}
	}
}

// Run слухає Redis Pub/Sub і роздає сповіщення адресатам.
// Канали іменуються "match:<user_id>", тому підписка за шаблоном покриває всіх.
func (h *Hub) Run() {
	ctx := context.Background()
	pubsub := h.Redis.PSubscribe(ctx, "match:*")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		userID := strings.TrimPrefix(msg.Channel, "match:")

		var notice models.MatchNotice
		if err := json.Unmarshal([]byte(msg.Payload), &notice); err != nil {
			log.Printf("Error unmarshalling Redis message: %v", err)
			continue
		}

		h.deliver(userID, notice)
	}
}

func (h *Hub) deliver(userID string, notice models.MatchNotice) {
	h.mu.RLock()
	conns := make([]*Client, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		select {
		case c.Send <- notice:
		default:
			// Клієнт не встигає читати — відключаємо його.
			h.Unregister(c)
			c.Conn.Close()
		}
	}
}
