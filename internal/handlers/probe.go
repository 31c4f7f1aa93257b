package handlers

import (
	"context"

	"github.com/gofiber/fiber/v3"
)

// ProbeHandler handles liveness and readiness endpoints.
type ProbeHandler struct {
	ping func(ctx context.Context) error // nil when running on the memory store
}

// NewProbeHandler creates a new probe handler. ping may be nil when there is
// no external store to check.
func NewProbeHandler(ping func(ctx context.Context) error) *ProbeHandler {
	return &ProbeHandler{ping: ping}
}

// Ping handles the /ping endpoint used by the frontend as a liveness probe.
func (h *ProbeHandler) Ping(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "pong",
	})
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// With a database configured it checks connectivity; the in-memory store is
// always ready.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.ping != nil {
		if err := h.ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "error",
				"error":  "database unavailable",
			})
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
