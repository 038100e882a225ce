package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/spec-kit/support-ops-api/internal/domain"
	"github.com/spec-kit/support-ops-api/internal/repository"
	apperrors "github.com/spec-kit/support-ops-api/pkg/util/errorutil"
)

// TicketListQuery carries the raw ticket listing query values.
type TicketListQuery struct {
	Status    string
	Channel   string
	Priority  string
	IssueType string
	RangeQuery
	Page     string
	PageSize string
}

// TicketService serves ticket listings and ticket history.
type TicketService struct {
	tickets repository.TicketRepository
	clock   clockwork.Clock
}

// NewTicketService constructs the service. A nil clock uses wall time.
func NewTicketService(tickets repository.TicketRepository, clock clockwork.Clock) *TicketService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TicketService{tickets: tickets, clock: clock}
}

// ListTickets normalizes filters and returns one page of tickets. Without
// from and to the window is the trailing 30 days.
func (s *TicketService) ListTickets(ctx context.Context, q TicketListQuery) (domain.TicketPage, error) {
	page := ParsePage(q.Page, q.PageSize)

	from, to, err := OptionalRange(q.RangeQuery)
	if err != nil {
		return domain.TicketPage{}, err
	}
	if from == nil && to == nil {
		now := s.clock.Now().UTC()
		start := now.Add(-defaultTicketWindow)
		from, to = &start, &now
	}

	filter := domain.TicketFilter{
		Status:      normUpper(q.Status),
		Channel:     normUpper(q.Channel),
		Priority:    normUpper(q.Priority),
		IssueType:   normTrim(q.IssueType),
		CreatedFrom: from,
		CreatedTo:   to,
	}
	return s.tickets.List(ctx, filter, page)
}

// GetTicket returns a single ticket or a not-found error.
func (s *TicketService) GetTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticketID, err := requireTicketID(ticketID)
	if err != nil {
		return nil, err
	}
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound(fmt.Sprintf("Ticket with ID %s not found", ticketID))
	}
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListEvents returns the ticket's events, newest first.
func (s *TicketService) ListEvents(ctx context.Context, ticketID string) ([]domain.TicketEvent, error) {
	ticketID, err := requireTicketID(ticketID)
	if err != nil {
		return nil, err
	}
	return s.tickets.ListEvents(ctx, ticketID)
}

// ListMessages returns the ticket's messages, newest first.
func (s *TicketService) ListMessages(ctx context.Context, ticketID string) ([]domain.TicketMessage, error) {
	ticketID, err := requireTicketID(ticketID)
	if err != nil {
		return nil, err
	}
	return s.tickets.ListMessages(ctx, ticketID)
}

func requireTicketID(ticketID string) (string, error) {
	ticketID = strings.TrimSpace(ticketID)
	if ticketID == "" {
		return "", apperrors.NewMissingParameter("Missing ticketId parameter")
	}
	return ticketID, nil
}
