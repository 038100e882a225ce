package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/support-ops-api/internal/api/dto"
	"github.com/spec-kit/support-ops-api/internal/service"
)

// TicketsHandler serves ticket listings and per-ticket history.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// ListTickets GET /api/tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	page, err := h.service.ListTickets(c.UserContext(), ticketListQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.Paginated(dto.TicketListItems(page.Items), dto.TicketPagination(page)))
}

// GetTicket GET /api/tickets/:ticketId.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.service.GetTicket(c.UserContext(), c.Params("ticketId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.TicketDetailFrom(ticket)))
}

// ListEvents GET /api/tickets/:ticketId/events.
func (h *TicketsHandler) ListEvents(c *fiber.Ctx) error {
	events, err := h.service.ListEvents(c.UserContext(), c.Params("ticketId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.TicketEvents(events)))
}

// ListMessages GET /api/tickets/:ticketId/messages.
func (h *TicketsHandler) ListMessages(c *fiber.Ctx) error {
	messages, err := h.service.ListMessages(c.UserContext(), c.Params("ticketId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.TicketMessages(messages)))
}
