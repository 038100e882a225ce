package service

import (
	"context"

	"github.com/spec-kit/support-ops-api/internal/domain"
	"github.com/spec-kit/support-ops-api/internal/repository"
)

// LogQuery carries the raw log endpoint query values.
type LogQuery struct {
	RangeQuery
	Service  string
	Endpoint string
}

// LogService serves service-log aggregates.
type LogService struct {
	logs repository.LogRepository
}

// NewLogService constructs the service.
func NewLogService(logs repository.LogRepository) *LogService {
	return &LogService{logs: logs}
}

// TopErrors ranks error signatures in the range, optionally for one service.
func (s *LogService) TopErrors(ctx context.Context, q LogQuery) ([]domain.TopError, error) {
	rng, err := RequireRange(q.RangeQuery)
	if err != nil {
		return nil, err
	}
	return s.logs.TopErrors(ctx, rng, domain.LogFilter{Service: normTrim(q.Service)})
}

// LatencyTrend returns hourly latency buckets per service endpoint.
func (s *LogService) LatencyTrend(ctx context.Context, q LogQuery) ([]domain.LatencyBucket, error) {
	rng, err := RequireRange(q.RangeQuery)
	if err != nil {
		return nil, err
	}
	return s.logs.LatencyTrend(ctx, rng, domain.LogFilter{
		Service:  normTrim(q.Service),
		Endpoint: normTrim(q.Endpoint),
	})
}
