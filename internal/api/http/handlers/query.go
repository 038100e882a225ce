package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-ops-api/internal/service"
)

func rangeQuery(c *fiber.Ctx) service.RangeQuery {
	return service.RangeQuery{From: c.Query("from"), To: c.Query("to")}
}

func logQuery(c *fiber.Ctx) service.LogQuery {
	return service.LogQuery{
		RangeQuery: rangeQuery(c),
		Service:    c.Query("service"),
		Endpoint:   c.Query("endpoint"),
	}
}

func ticketListQuery(c *fiber.Ctx) service.TicketListQuery {
	return service.TicketListQuery{
		Status:     c.Query("status"),
		Channel:    c.Query("channel"),
		Priority:   c.Query("priority"),
		IssueType:  c.Query("issueType"),
		RangeQuery: rangeQuery(c),
		Page:       c.Query("page"),
		PageSize:   c.Query("pageSize"),
	}
}
