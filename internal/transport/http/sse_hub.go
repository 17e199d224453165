package http

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"
	"vn.io.arda/toast/internal/domain"
)

// Client represents a connected SSE client (one open page).
type Client struct {
	sessionID string
	send      chan []byte
}

// Hub manages all active SSE client connections. The toast container is a
// shared surface, so toast lifecycle events go to every client; pagination
// signals go only to the session whose viewport changed.
// Single-instance model: all broadcast is in-process.
type Hub struct {
	mu      sync.RWMutex
	clients map[string][]*Client // sessionID -> clients
}

// NewHub creates a new SSE Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string][]*Client),
	}
}

// Register adds a new SSE client.
func (h *Hub) Register(sessionID string, send chan []byte) *Client {
	c := &Client{sessionID: sessionID, send: send}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[sessionID] = append(h.clients[sessionID], c)

	log.Debug().Str("session", sessionID).Msg("SSE client connected")
	return c
}

// Unregister removes an SSE client.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[c.sessionID]
	updated := make([]*Client, 0, len(clients))
	for _, existing := range clients {
		if existing != c {
			updated = append(updated, existing)
		}
	}

	if len(updated) == 0 {
		delete(h.clients, c.sessionID)
	} else {
		h.clients[c.sessionID] = updated
	}

	log.Debug().Str("session", c.sessionID).Msg("SSE client disconnected")
}

// Broadcast sends a lifecycle event to every connected client.
// This satisfies the application.Broadcaster interface.
func (h *Hub) Broadcast(ev domain.Event) {
	msg := buildSSEMessage(ev)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, clients := range h.clients {
		for _, c := range clients {
			c.push(msg)
		}
	}
}

// SendTo sends an event only to the clients of one session.
func (h *Hub) SendTo(sessionID string, ev domain.Event) {
	msg := buildSSEMessage(ev)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients[sessionID] {
		c.push(msg)
	}
}

// ConnectedCount returns the total number of connected SSE clients.
func (h *Hub) ConnectedCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, clients := range h.clients {
		total += len(clients)
	}
	return total
}

func (c *Client) push(msg []byte) {
	select {
	case c.send <- msg:
	default:
		// Client is slow/disconnected, skip
		log.Warn().Str("session", c.sessionID).Msg("SSE client send buffer full, skipping")
	}
}

// buildSSEMessage formats an event as an SSE data frame.
func buildSSEMessage(ev domain.Event) []byte {
	b, _ := json.Marshal(ev)
	return []byte("event: " + string(ev.Type) + "\ndata: " + string(b) + "\n\n")
}
