package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-ops-api/internal/api/dto"
	"github.com/spec-kit/support-ops-api/internal/service"
)

// LogsHandler serves service-log aggregates.
type LogsHandler struct {
	service *service.LogService
}

// NewLogsHandler constructs handler.
func NewLogsHandler(logService *service.LogService) *LogsHandler {
	return &LogsHandler{service: logService}
}

// TopErrors GET /api/logs/errors/top.
func (h *LogsHandler) TopErrors(c *fiber.Ctx) error {
	rows, err := h.service.TopErrors(c.UserContext(), logQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.TopErrors(rows)))
}

// LatencyTrend GET /api/logs/latency/trend.
func (h *LogsHandler) LatencyTrend(c *fiber.Ctx) error {
	rows, err := h.service.LatencyTrend(c.UserContext(), logQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.LatencyTrend(rows)))
}
