package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/support-ops-api/internal/api/http/handlers"
	"github.com/spec-kit/support-ops-api/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Overview *handlers.OverviewHandler
	Tickets  *handlers.TicketsHandler
	Logs     *handlers.LogsHandler
	// Metrics, when set, is exposed at /metrics.
	Metrics *observability.Metrics
}

// RegisterRoutes wires HTTP routes. Anything unmatched gets the 404 envelope.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Health)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/", handlers.Index)

	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	api := app.Group("/api")

	overview := api.Group("/overview")
	overview.Get("/summary", cfg.Overview.Summary)
	overview.Get("/support-trend", cfg.Overview.SupportTrend)
	overview.Get("/service-trend", cfg.Overview.ServiceTrend)

	tickets := api.Group("/tickets")
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Get("/:ticketId", cfg.Tickets.GetTicket)
	tickets.Get("/:ticketId/events", cfg.Tickets.ListEvents)
	tickets.Get("/:ticketId/messages", cfg.Tickets.ListMessages)

	logs := api.Group("/logs")
	logs.Get("/errors/top", cfg.Logs.TopErrors)
	logs.Get("/latency/trend", cfg.Logs.LatencyTrend)

	app.Use(notFound)
}
