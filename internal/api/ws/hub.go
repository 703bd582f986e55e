// Package ws pushes catalog change events to connected dashboards over
// WebSocket, so an open page re-renders without polling.
package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// EventType names a catalog change pushed to clients.
type EventType string

const (
	EventEntryAdded   EventType = "entry.added"
	EventEntryUpdated EventType = "entry.updated"
	EventEntryRemoved EventType = "entry.removed"
	EventUserAdded    EventType = "user.added"
	EventUserRemoved  EventType = "user.removed"
)

// Event is the wire format for one change notification.
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	At      time.Time   `json:"at"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is open for the whole API
	},
}

// Hub tracks connected clients and fans events out to them.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	logger  *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		logger:  logger,
	}
}

// HandleConnection upgrades the request and registers the client. The
// read loop only exists to detect disconnects; clients send nothing.
func (h *Hub) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends an event to every connected client. Clients that fail
// to accept the write are dropped.
func (h *Hub) Broadcast(eventType EventType, payload interface{}) {
	event := Event{
		Type:    eventType,
		Payload: payload,
		At:      time.Now(),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			h.logger.Debug("Dropping websocket client", zap.Error(err))
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
