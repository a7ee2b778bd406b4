package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/censudex/gateway/internal/auth"
	"github.com/censudex/gateway/internal/rpc"
)

// callMeta builds the outbound metadata for a backend call from the
// authenticated identity and the raw bearer header.
func callMeta(c *fiber.Ctx) *rpc.CallMeta {
	identity, _ := auth.IdentityFromContext(c)
	return rpc.NewCallMeta(identity, c.Get(fiber.HeaderAuthorization))
}
