package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/spec-kit/support-ops-api/internal/domain"
	"github.com/spec-kit/support-ops-api/internal/persistence"
)

// OverviewRepository computes the executive metrics over tickets and service logs.
type OverviewRepository interface {
	TicketSummary(ctx context.Context, r domain.DateRange) (domain.TicketSummary, error)
	ErrorEventCount(ctx context.Context, r domain.DateRange) (int64, error)
	SupportTrend(ctx context.Context, r domain.DateRange) ([]domain.SupportTrendPoint, error)
	ServiceTrend(ctx context.Context, r domain.DateRange) ([]domain.ServiceTrendPoint, error)
}

var (
	closedCountSQL = fmt.Sprintf("SUM(CASE WHEN t.status = '%s' THEN 1 ELSE 0 END)", domain.TicketStatusClosed)
	slaBreachSQL   = "SUM(CASE WHEN t.first_response_at IS NOT NULL AND t.sla_due_at IS NOT NULL " +
		"AND t.first_response_at > t.sla_due_at THEN 1 ELSE 0 END)"
	errorCountSQL = fmt.Sprintf("SUM(CASE WHEN level = '%s' THEN 1 ELSE 0 END)", domain.LogLevelError)
)

type overviewRepository struct {
	exec    executor
	dialect persistence.Dialect
}

// NewOverviewRepository instantiates repository.
func NewOverviewRepository(db *sqlx.DB, dialect persistence.Dialect, logger *zap.Logger) OverviewRepository {
	return &overviewRepository{exec: newExecutor(db, logger), dialect: dialect}
}

func (r *overviewRepository) TicketSummary(ctx context.Context, rng domain.DateRange) (domain.TicketSummary, error) {
	query, args, err := r.summaryQuery(rng)
	if err != nil {
		return domain.TicketSummary{}, err
	}
	var summary domain.TicketSummary
	if _, err := r.exec.selectOne(ctx, &summary, query, args); err != nil {
		return domain.TicketSummary{}, err
	}
	return summary, nil
}

func (r *overviewRepository) ErrorEventCount(ctx context.Context, rng domain.DateRange) (int64, error) {
	query, args, err := r.dialect.Builder().
		From(goqu.T("service_log_events")).
		Select(goqu.COUNT(goqu.Star()).As("total_error_events")).
		Where(
			goqu.C("level").Eq(domain.LogLevelError),
			goqu.C("event_time").Gte(rng.From),
			goqu.C("event_time").Lt(rng.To),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, err
	}
	var total int64
	if _, err := r.exec.selectOne(ctx, &total, query, args); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *overviewRepository) SupportTrend(ctx context.Context, rng domain.DateRange) ([]domain.SupportTrendPoint, error) {
	query, args, err := r.supportTrendQuery(rng)
	if err != nil {
		return nil, err
	}
	points := []domain.SupportTrendPoint{}
	if err := r.exec.selectAll(ctx, &points, query, args); err != nil {
		return nil, err
	}
	return points, nil
}

func (r *overviewRepository) ServiceTrend(ctx context.Context, rng domain.DateRange) ([]domain.ServiceTrendPoint, error) {
	query, args, err := r.serviceTrendQuery(rng)
	if err != nil {
		return nil, err
	}
	points := []domain.ServiceTrendPoint{}
	if err := r.exec.selectAll(ctx, &points, query, args); err != nil {
		return nil, err
	}
	return points, nil
}

func (r *overviewRepository) summaryQuery(rng domain.DateRange) (string, []any, error) {
	elapsed := r.dialect.SecondsBetween("t.created_at", "COALESCE(t.first_response_at, "+r.dialect.UTCNow()+")")
	return r.dialect.Builder().
		From(goqu.T("tickets").As("t")).
		Select(
			goqu.COUNT(goqu.Star()).As("total_tickets"),
			goqu.L(closedCountSQL).As("tickets_closed"),
			goqu.L(slaBreachSQL).As("sla_breaches"),
			goqu.L("ROUND(AVG("+elapsed+"))").As("avg_first_response_seconds"),
		).
		Where(
			goqu.I("t.created_at").Gte(rng.From),
			goqu.I("t.created_at").Lt(rng.To),
		).
		Prepared(true).
		ToSQL()
}

func (r *overviewRepository) supportTrendQuery(rng domain.DateRange) (string, []any, error) {
	day := goqu.L(r.dialect.DayBucket("t.created_at"))
	return r.dialect.Builder().
		From(goqu.T("tickets").As("t")).
		Select(
			day.As("date"),
			goqu.COUNT(goqu.Star()).As("tickets_created"),
			goqu.L(closedCountSQL).As("tickets_closed"),
			goqu.L(slaBreachSQL).As("sla_breaches"),
		).
		Where(
			goqu.I("t.created_at").Gte(rng.From),
			goqu.I("t.created_at").Lt(rng.To),
		).
		GroupBy(day).
		Order(day.Asc()).
		Prepared(true).
		ToSQL()
}

// serviceTrendQuery covers only events that carry a latency. Each day's
// latencies are ranked ascending and p95 is the sample at rank CEIL(0.95 * n).
func (r *overviewRepository) serviceTrendQuery(rng domain.DateRange) (string, []any, error) {
	day := r.dialect.DayBucket("event_time")
	ranked := r.dialect.Builder().
		From(goqu.T("service_log_events")).
		Select(
			goqu.L(day).As("bucket"),
			goqu.C("level"),
			goqu.C("latency_ms"),
			goqu.L("ROW_NUMBER() OVER (PARTITION BY "+day+" ORDER BY latency_ms)").As("latency_rank"),
			goqu.L("COUNT(*) OVER (PARTITION BY "+day+")").As("latency_count"),
		).
		Where(
			goqu.C("event_time").Gte(rng.From),
			goqu.C("event_time").Lt(rng.To),
			goqu.C("latency_ms").IsNotNull(),
		)

	return r.dialect.Builder().
		From(ranked.As("ranked")).
		Select(
			goqu.C("bucket").As("date"),
			goqu.COUNT(goqu.Star()).As("total_events"),
			goqu.L(errorCountSQL).As("error_events"),
			goqu.L("ROUND(MAX(CASE WHEN latency_rank = CEIL(0.95 * latency_count) THEN latency_ms END))").As("p95_latency_ms"),
		).
		GroupBy(goqu.C("bucket")).
		Order(goqu.C("bucket").Asc()).
		Prepared(true).
		ToSQL()
}
