package repository

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-ops-api/internal/domain"
)

var testRange = domain.DateRange{From: rangeFrom, To: rangeTo}

func TestTicketSummaryEmptyRange(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOverviewRepository(db, mustDialect(t, "mysql"), nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("ROUND(AVG(TIMESTAMPDIFF(SECOND, t.created_at, COALESCE(t.first_response_at, UTC_TIMESTAMP()))))")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_tickets", "tickets_closed", "sla_breaches", "avg_first_response_seconds",
		}).AddRow(int64(0), nil, nil, nil))

	summary, err := repo.TicketSummary(context.Background(), testRange)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalTickets)
	assert.Nil(t, summary.TicketsClosed)
	assert.Nil(t, summary.AvgFirstResponseSeconds)
}

func TestErrorEventCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOverviewRepository(db, mustDialect(t, "mysql"), nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("FROM `service_log_events`")).
		WithArgs("ERROR", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"total_error_events"}).AddRow(int64(7)))

	total, err := repo.ErrorEventCount(context.Background(), testRange)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
}

func TestSupportTrendByDay(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOverviewRepository(db, mustDialect(t, "mysql"), nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY DATE_FORMAT(t.created_at, '%Y-%m-%d') ORDER BY DATE_FORMAT(t.created_at, '%Y-%m-%d') ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"date", "tickets_created", "tickets_closed", "sla_breaches"}).
			AddRow("2024-01-01", int64(3), int64(1), int64(0)).
			AddRow("2024-01-02", int64(2), int64(2), int64(1)))

	points, err := repo.SupportTrend(context.Background(), testRange)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2024-01-01", points[0].Date)
	assert.Equal(t, int64(1), *points[1].SLABreaches)
}

func TestServiceTrendRanksLatencies(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOverviewRepository(db, mustDialect(t, "mysql"), nopLogger())

	mock.ExpectQuery(regexp.QuoteMeta("latency_rank = CEIL(0.95 * latency_count)")).
		WillReturnRows(sqlmock.NewRows([]string{"date", "total_events", "error_events", "p95_latency_ms"}).
			AddRow("2024-01-01", int64(10), int64(2), float64(480)).
			AddRow("2024-01-02", int64(4), int64(0), nil))

	points, err := repo.ServiceTrend(context.Background(), testRange)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, float64(480), *points[0].P95LatencyMs)
	assert.Nil(t, points[1].P95LatencyMs)
}

func TestServiceTrendSkipsEventsWithoutLatency(t *testing.T) {
	repo := &overviewRepository{dialect: mustDialect(t, "mysql")}

	query, args, err := repo.serviceTrendQuery(testRange)
	require.NoError(t, err)
	assert.Contains(t, query, "AND (`latency_ms` IS NOT NULL)")
	assert.Contains(t, query, "COUNT(*) OVER (PARTITION BY DATE_FORMAT(event_time, '%Y-%m-%d'))")
	assert.Len(t, args, 2)
}

func TestOverviewQueriesOnPostgres(t *testing.T) {
	repo := &overviewRepository{dialect: mustDialect(t, "postgres")}

	query, args, err := repo.summaryQuery(testRange)
	require.NoError(t, err)
	assert.Contains(t, query, `"t"."created_at" >= $1`)
	assert.Contains(t, query, "CAST(EXTRACT(EPOCH FROM (COALESCE(t.first_response_at, (NOW() AT TIME ZONE 'UTC')) - t.created_at)) AS BIGINT)")
	assert.Len(t, args, 2)

	query, args, err = repo.serviceTrendQuery(testRange)
	require.NoError(t, err)
	assert.Contains(t, query, "ROW_NUMBER() OVER (PARTITION BY to_char(event_time, 'YYYY-MM-DD')")
	assert.Contains(t, query, `AS "ranked"`)
	assert.Contains(t, query, `("latency_ms" IS NOT NULL)`)
	assert.NotContains(t, query, "latency_ms IS NULL")
	assert.NotContains(t, strings.ToUpper(query), "GROUP_CONCAT")
	assert.Len(t, args, 2)
}
