package handlers

import "github.com/gofiber/fiber/v2"

var endpoints = []string{
	"GET /api/overview/summary?from=&to=",
	"GET /api/overview/support-trend?from=&to=",
	"GET /api/overview/service-trend?from=&to=",
	"GET /api/tickets?status=&channel=&priority=&issueType=&from=&to=&page=&pageSize=",
	"GET /api/tickets/:ticketId",
	"GET /api/tickets/:ticketId/events",
	"GET /api/tickets/:ticketId/messages",
	"GET /api/logs/errors/top?from=&to=&service=",
	"GET /api/logs/latency/trend?from=&to=&service=&endpoint=",
}

// Index GET /. Describes the API.
func Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Payment Support Ops API",
		"health":    "/health",
		"endpoints": endpoints,
	})
}
