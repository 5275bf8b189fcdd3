package handler

import (
	"ai-legaldoc-be/internal/pkg/logger"
	"ai-legaldoc-be/internal/pkg/serverutils"
	internalWS "ai-legaldoc-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SessionEventsHandler upgrades clients onto the session event stream.
type SessionEventsHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewSessionEventsHandler(hub *internalWS.Hub, log logger.ILogger) *SessionEventsHandler {
	return &SessionEventsHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *SessionEventsHandler) RegisterRoutes(r fiber.Router) {
	g := r.Group("/session/v1")
	g.Get("events", h.ServeWs)
}

// ServeWs handles websocket requests from the peer. The session id comes
// from the same header middleware as the REST endpoints, with a query
// param fallback for browser WebSocket clients that cannot set headers.
func (h *SessionEventsHandler) ServeWs(c *fiber.Ctx) error {
	sessionID := c.Query("session")
	if sessionID == "" {
		sessionID = serverutils.SessionID(c)
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("SessionEventsHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("SessionEventsHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
