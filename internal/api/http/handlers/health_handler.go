package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jonboulle/clockwork"

	"github.com/spec-kit/support-ops-api/internal/api/dto"
)

const readyTimeout = 2 * time.Second

// Pinger is implemented by the reporting store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to health, liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	store       Pinger
	clock       clockwork.Clock
}

// NewHealthHandler returns a new handler instance. A nil clock uses wall time.
func NewHealthHandler(serviceName, version string, store Pinger, clock clockwork.Clock) *HealthHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &HealthHandler{serviceName: serviceName, version: version, store: store, clock: clock}
}

// Health GET /health. It never touches the store.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339Nano),
	})
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports readiness by pinging the store.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(dto.Failure("Service unavailable", "Reporting store is unreachable"))
	}
	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": fiber.Map{"database": "ok"},
	})
}
