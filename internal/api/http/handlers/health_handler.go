package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Pinger verifies connectivity to a dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	cache       Pinger
}

// NewHealthHandler returns a new handler instance. cache may be nil
// when the in-process cache backend is used.
func NewHealthHandler(serviceName, version string, cache Pinger) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, cache: cache}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	depStatus := fiber.Map{}
	ready := true

	if h.cache != nil {
		if err := h.cache.Ping(c.UserContext()); err != nil {
			depStatus["cache"] = err.Error()
			ready = false
		} else {
			depStatus["cache"] = "ok"
		}
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"message":      "one or more dependencies unavailable",
		"dependencies": depStatus,
	})
}
