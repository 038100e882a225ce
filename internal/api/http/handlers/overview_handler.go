package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-ops-api/internal/api/dto"
	"github.com/spec-kit/support-ops-api/internal/service"
)

// OverviewHandler serves the executive summary and trends.
type OverviewHandler struct {
	service *service.OverviewService
}

// NewOverviewHandler constructs handler.
func NewOverviewHandler(overviewService *service.OverviewService) *OverviewHandler {
	return &OverviewHandler{service: overviewService}
}

// Summary GET /api/overview/summary.
func (h *OverviewHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext(), rangeQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.SummaryFrom(summary)))
}

// SupportTrend GET /api/overview/support-trend.
func (h *OverviewHandler) SupportTrend(c *fiber.Ctx) error {
	points, err := h.service.SupportTrend(c.UserContext(), rangeQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.SupportTrend(points)))
}

// ServiceTrend GET /api/overview/service-trend.
func (h *OverviewHandler) ServiceTrend(c *fiber.Ctx) error {
	points, err := h.service.ServiceTrend(c.UserContext(), rangeQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.ServiceTrend(points)))
}
