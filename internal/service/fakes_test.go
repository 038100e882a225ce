package service

import (
	"context"

	"github.com/spec-kit/support-ops-api/internal/domain"
	"github.com/spec-kit/support-ops-api/internal/repository"
)

type fakeTicketRepo struct {
	gotFilter domain.TicketFilter
	gotPage   domain.Page
	page      domain.TicketPage
	ticket    *domain.Ticket
	events    []domain.TicketEvent
	messages  []domain.TicketMessage
	err       error
}

func (f *fakeTicketRepo) List(_ context.Context, filter domain.TicketFilter, page domain.Page) (domain.TicketPage, error) {
	f.gotFilter = filter
	f.gotPage = page
	if f.err != nil {
		return domain.TicketPage{}, f.err
	}
	res := f.page
	res.Page = page
	return res, nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, ticketID string) (*domain.Ticket, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.ticket == nil || f.ticket.TicketID != ticketID {
		return nil, repository.ErrNotFound
	}
	return f.ticket, nil
}

func (f *fakeTicketRepo) ListEvents(context.Context, string) ([]domain.TicketEvent, error) {
	return f.events, f.err
}

func (f *fakeTicketRepo) ListMessages(context.Context, string) ([]domain.TicketMessage, error) {
	return f.messages, f.err
}

type fakeOverviewRepo struct {
	calls       []string
	gotRange    domain.DateRange
	summary     domain.TicketSummary
	errorEvents int64
	summaryErr  error
	countErr    error
}

func (f *fakeOverviewRepo) TicketSummary(_ context.Context, r domain.DateRange) (domain.TicketSummary, error) {
	f.calls = append(f.calls, "summary")
	f.gotRange = r
	return f.summary, f.summaryErr
}

func (f *fakeOverviewRepo) ErrorEventCount(_ context.Context, r domain.DateRange) (int64, error) {
	f.calls = append(f.calls, "errors")
	return f.errorEvents, f.countErr
}

func (f *fakeOverviewRepo) SupportTrend(_ context.Context, r domain.DateRange) ([]domain.SupportTrendPoint, error) {
	f.calls = append(f.calls, "support")
	f.gotRange = r
	return []domain.SupportTrendPoint{}, nil
}

func (f *fakeOverviewRepo) ServiceTrend(_ context.Context, r domain.DateRange) ([]domain.ServiceTrendPoint, error) {
	f.calls = append(f.calls, "service")
	f.gotRange = r
	return []domain.ServiceTrendPoint{}, nil
}

type fakeLogRepo struct {
	gotRange  domain.DateRange
	gotFilter domain.LogFilter
}

func (f *fakeLogRepo) TopErrors(_ context.Context, r domain.DateRange, filter domain.LogFilter) ([]domain.TopError, error) {
	f.gotRange, f.gotFilter = r, filter
	return []domain.TopError{}, nil
}

func (f *fakeLogRepo) LatencyTrend(_ context.Context, r domain.DateRange, filter domain.LogFilter) ([]domain.LatencyBucket, error) {
	f.gotRange, f.gotFilter = r, filter
	return []domain.LatencyBucket{}, nil
}
