package service

import (
	"context"

	"github.com/spec-kit/support-ops-api/internal/domain"
	"github.com/spec-kit/support-ops-api/internal/repository"
)

// OverviewService computes the executive summary and daily trends.
type OverviewService struct {
	overview repository.OverviewRepository
}

// NewOverviewService constructs the service.
func NewOverviewService(overview repository.OverviewRepository) *OverviewService {
	return &OverviewService{overview: overview}
}

// Summary merges the ticket aggregate with the error event count of the same
// range. The two queries run one after the other.
func (s *OverviewService) Summary(ctx context.Context, q RangeQuery) (domain.Summary, error) {
	rng, err := RequireRange(q)
	if err != nil {
		return domain.Summary{}, err
	}
	tickets, err := s.overview.TicketSummary(ctx, rng)
	if err != nil {
		return domain.Summary{}, err
	}
	errorEvents, err := s.overview.ErrorEventCount(ctx, rng)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summary{TicketSummary: tickets, TotalErrorEvents: errorEvents}, nil
}

// SupportTrend returns per-day ticket counts.
func (s *OverviewService) SupportTrend(ctx context.Context, q RangeQuery) ([]domain.SupportTrendPoint, error) {
	rng, err := RequireRange(q)
	if err != nil {
		return nil, err
	}
	return s.overview.SupportTrend(ctx, rng)
}

// ServiceTrend returns per-day log volume and p95 latency.
func (s *OverviewService) ServiceTrend(ctx context.Context, q RangeQuery) ([]domain.ServiceTrendPoint, error) {
	rng, err := RequireRange(q)
	if err != nil {
		return nil, err
	}
	return s.overview.ServiceTrend(ctx, rng)
}
