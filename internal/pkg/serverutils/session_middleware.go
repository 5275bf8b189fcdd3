package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-Id"

	// LocalSessionID is the ambient session used when the client sends no
	// header: one unauthenticated local session per deployment.
	LocalSessionID = "local"
)

// SessionMiddleware resolves the session id for the request. Clients may
// send "new" to be handed a fresh id, an explicit id to keep their session,
// or nothing to use the shared local session. The resolved id is echoed
// back so browsers can pin it.
func SessionMiddleware(ctx *fiber.Ctx) error {
	id := ctx.Get(SessionHeader)
	switch id {
	case "":
		id = LocalSessionID
	case "new":
		id = uuid.NewString()
	}

	ctx.Locals("session_id", id)
	ctx.Set(SessionHeader, id)
	return ctx.Next()
}

// SessionID reads the session id resolved by SessionMiddleware.
func SessionID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals("session_id").(string); ok && id != "" {
		return id
	}
	return LocalSessionID
}
