package ws

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/xgumball/fwitter3clone/internal/model"
)

// Hub fans newly created tweets out to connected websocket clients.
type Hub struct {
	clients   map[*Client]bool
	broadcast chan model.Tweet
	log       *logrus.Logger

	mu sync.Mutex
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients:   make(map[*Client]bool),
		broadcast: make(chan model.Tweet, 16),
		log:       log,
	}
}

// Run delivers broadcast tweets to every registered client. A client
// that fails a write is closed and dropped.
func (h *Hub) Run() {
	for t := range h.broadcast {
		h.mu.Lock()
		for client := range h.clients {
			if err := client.conn.WriteJSON(t); err != nil {
				h.log.WithError(err).Warn("websocket write")
				client.conn.Close()
				delete(h.clients, client)
			}
		}
		h.mu.Unlock()
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	delete(h.clients, client)
	h.mu.Unlock()
}

// ClientCount reports how many subscribers are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// PublishTweet queues the tweet for broadcast. The queue is bounded;
// when full, the tweet is dropped rather than blocking the request
// that created it.
func (h *Hub) PublishTweet(ctx context.Context, t model.Tweet) error {
	select {
	case h.broadcast <- t:
	default:
	}
	return nil
}
