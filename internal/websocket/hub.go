package websocket

import (
	"encoding/json"
	"sync"

	"ai-legaldoc-be/internal/pkg/logger"
	"ai-legaldoc-be/pkg/events"
)

// Hub fans session events out to the websocket clients of each session.
// Single-process registry; there is no cross-instance delivery.
type Hub struct {
	// Registered clients map: SessionID -> List of Clients (multi-tab)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = append(h.clients[client.SessionID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.SessionID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.SessionID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.SessionID]) == 0 {
					delete(h.clients, client.SessionID)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// SendEvent pushes an event to every client of its session. Slow clients
// whose buffers are full get evicted rather than blocking the hub.
func (h *Hub) SendEvent(evt events.SessionEvent) {
	data, err := json.Marshal(map[string]interface{}{
		"type": evt.Type,
		"data": evt,
	})
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := h.clients[evt.SessionID]
	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			// Buffer full: drop the client, the unregister path closes Send.
			// Async so the eviction does not block while we hold the read lock.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
	h.mu.RUnlock()
}
