package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-ops-api/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func TestSummaryMergesErrorEventCount(t *testing.T) {
	repo := &fakeOverviewRepo{
		summary: domain.TicketSummary{
			TotalTickets:  10,
			TicketsClosed: int64Ptr(4),
			SLABreaches:   int64Ptr(2),
		},
		errorEvents: 17,
	}
	svc := NewOverviewService(repo)

	summary, err := svc.Summary(context.Background(), RangeQuery{From: "2024-01-01", To: "2024-01-31"})
	require.NoError(t, err)

	assert.Equal(t, []string{"summary", "errors"}, repo.calls)
	assert.Equal(t, int64(10), summary.TotalTickets)
	assert.Equal(t, int64(17), summary.TotalErrorEvents)
	assert.LessOrEqual(t, *summary.TicketsClosed, summary.TotalTickets)
	assert.LessOrEqual(t, *summary.SLABreaches, summary.TotalTickets)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), repo.gotRange.To)
}

func TestSummaryStopsOnFirstFailure(t *testing.T) {
	repo := &fakeOverviewRepo{summaryErr: errors.New("boom")}
	svc := NewOverviewService(repo)

	_, err := svc.Summary(context.Background(), RangeQuery{From: "2024-01-01", To: "2024-01-31"})
	require.Error(t, err)
	assert.Equal(t, []string{"summary"}, repo.calls)
}

func TestTrendsValidateBeforeQuerying(t *testing.T) {
	repo := &fakeOverviewRepo{}
	svc := NewOverviewService(repo)

	_, err := svc.SupportTrend(context.Background(), RangeQuery{From: "2024-01-31", To: "2024-01-01"})
	require.Error(t, err)
	_, err = svc.ServiceTrend(context.Background(), RangeQuery{To: "2024-01-01"})
	require.Error(t, err)
	assert.Empty(t, repo.calls)

	_, err = svc.ServiceTrend(context.Background(), RangeQuery{From: "2024-01-01", To: "2024-01-02"})
	require.NoError(t, err)
	assert.Equal(t, []string{"service"}, repo.calls)
}

func TestLogFiltersAreTrimmedNotUppercased(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewLogService(repo)

	_, err := svc.LatencyTrend(context.Background(), LogQuery{
		RangeQuery: RangeQuery{From: "2024-01-01", To: "2024-01-02"},
		Service:    " payments-api ",
		Endpoint:   "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "payments-api", *repo.gotFilter.Service)
	assert.Nil(t, repo.gotFilter.Endpoint)

	_, err = svc.TopErrors(context.Background(), LogQuery{RangeQuery: RangeQuery{From: "2024-01-01", To: "2024-01-02"}})
	require.NoError(t, err)
	assert.Nil(t, repo.gotFilter.Service)
}
