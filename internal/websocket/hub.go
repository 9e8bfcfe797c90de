package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"daeda-site-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const redisChannel = "lead_notifications"

// Notification is the payload pushed to connected admin dashboards.
type Notification struct {
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data"`
	CreatedAt time.Time              `json:"created_at"`
}

// Hub fans lead notifications out to every connected admin client. A
// Redis channel relays broadcasts between instances so it does not
// matter which instance an admin's websocket landed on.
type Hub struct {
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fanout, may be nil.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Admin client registered", map[string]interface{}{"remote": client.Remote})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Info("Hub", "Admin client unregistered", map[string]interface{}{"remote": client.Remote})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a notification to every connected client and relays
// it to the other instances via Redis.
func (h *Hub) Broadcast(notification Notification) {
	data, _ := json.Marshal(notification)

	h.sendLocal(data)

	if h.rdb != nil {
		h.rdb.Publish(context.Background(), redisChannel, data)
	}
}

func (h *Hub) sendLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"remote": client.Remote})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var notification Notification
		if err := json.Unmarshal([]byte(msg.Payload), &notification); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		h.sendLocal([]byte(msg.Payload))
	}
}
