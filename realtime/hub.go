// Package realtime tracks open websocket connections and fans out events.
package realtime

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Client wraps a websocket connection with a write lock, so echo replies and
// broadcasts cannot interleave frames on the same connection.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{conn: conn}
}

func (c *Client) Send(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

func (c *Client) SendText(msg string) error {
	return c.Send(websocket.TextMessage, []byte(msg))
}

// Hub is the registry of currently open connections. Register, Unregister and
// Broadcast are safe to call from concurrent handlers.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast delivers the event to every registered connection. Iteration runs
// over a point-in-time snapshot, so connects and disconnects during delivery
// cannot corrupt the registry. A send failure on one connection is logged and
// delivery continues; the connection's own read loop handles teardown.
func (h *Hub) Broadcast(event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("cannot marshal broadcast event")
		return
	}

	for _, c := range h.snapshot() {
		if err := c.Send(websocket.TextMessage, payload); err != nil {
			log.Debug().Err(err).Msg("broadcast send failed")
		}
	}
}

func (h *Hub) snapshot() []*Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	return clients
}
