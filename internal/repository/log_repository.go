package repository

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/spec-kit/support-ops-api/internal/domain"
	"github.com/spec-kit/support-ops-api/internal/persistence"
)

// TopErrorsLimit caps the top error ranking.
const TopErrorsLimit = 20

// LogRepository reads aggregates of the service log stream.
type LogRepository interface {
	TopErrors(ctx context.Context, r domain.DateRange, filter domain.LogFilter) ([]domain.TopError, error)
	LatencyTrend(ctx context.Context, r domain.DateRange, filter domain.LogFilter) ([]domain.LatencyBucket, error)
}

type logRepository struct {
	exec    executor
	dialect persistence.Dialect
}

// NewLogRepository instantiates repository.
func NewLogRepository(db *sqlx.DB, dialect persistence.Dialect, logger *zap.Logger) LogRepository {
	return &logRepository{exec: newExecutor(db, logger), dialect: dialect}
}

func (r *logRepository) TopErrors(ctx context.Context, rng domain.DateRange, filter domain.LogFilter) ([]domain.TopError, error) {
	query, args, err := r.topErrorsQuery(rng, filter)
	if err != nil {
		return nil, err
	}
	rows := []domain.TopError{}
	if err := r.exec.selectAll(ctx, &rows, query, args); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *logRepository) LatencyTrend(ctx context.Context, rng domain.DateRange, filter domain.LogFilter) ([]domain.LatencyBucket, error) {
	query, args, err := r.latencyTrendQuery(rng, filter)
	if err != nil {
		return nil, err
	}
	rows := []domain.LatencyBucket{}
	if err := r.exec.selectAll(ctx, &rows, query, args); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *logRepository) topErrorsQuery(rng domain.DateRange, filter domain.LogFilter) (string, []any, error) {
	conds := []exp.Expression{
		goqu.C("level").Eq(domain.LogLevelError),
		goqu.C("event_time").Gte(rng.From),
		goqu.C("event_time").Lt(rng.To),
	}
	if filter.Service != nil {
		conds = append(conds, goqu.C("service_name").Eq(*filter.Service))
	}

	query, args, err := r.dialect.Builder().
		From(goqu.T("service_log_events")).
		Select(
			goqu.C("error_signature"),
			goqu.C("service_name"),
			goqu.COUNT(goqu.Star()).As("error_count"),
			goqu.MAX(goqu.C("event_time")).As("last_occurrence"),
			goqu.L("COUNT(DISTINCT "+r.dialect.DayBucket("event_time")+")").As("days_with_errors"),
		).
		Where(conds...).
		GroupBy(goqu.C("error_signature"), goqu.C("service_name")).
		Order(goqu.C("error_count").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return "", nil, err
	}
	return withLimit(query, TopErrorsLimit), args, nil
}

// latencyTrendQuery groups non-null latencies by hour, service and endpoint.
// p95 is the sample at rank CEIL(0.95 * n) of the ascending latencies.
func (r *logRepository) latencyTrendQuery(rng domain.DateRange, filter domain.LogFilter) (string, []any, error) {
	conds := []exp.Expression{
		goqu.C("event_time").Gte(rng.From),
		goqu.C("event_time").Lt(rng.To),
		goqu.C("latency_ms").IsNotNull(),
	}
	if filter.Service != nil {
		conds = append(conds, goqu.C("service_name").Eq(*filter.Service))
	}
	if filter.Endpoint != nil {
		conds = append(conds, goqu.C("endpoint").Eq(*filter.Endpoint))
	}

	hour := r.dialect.HourBucket("event_time")
	partition := "PARTITION BY " + hour + ", service_name, endpoint"
	ranked := r.dialect.Builder().
		From(goqu.T("service_log_events")).
		Select(
			goqu.L(hour).As("hour_start"),
			goqu.C("service_name"),
			goqu.C("endpoint"),
			goqu.C("latency_ms"),
			goqu.L("ROW_NUMBER() OVER ("+partition+" ORDER BY latency_ms)").As("latency_rank"),
			goqu.L("COUNT(*) OVER ("+partition+")").As("bucket_size"),
		).
		Where(conds...)

	return r.dialect.Builder().
		From(ranked.As("ranked")).
		Select(
			goqu.C("hour_start"),
			goqu.C("service_name"),
			goqu.C("endpoint"),
			goqu.L("ROUND(MAX(CASE WHEN latency_rank = CEIL(0.95 * bucket_size) THEN latency_ms END))").As("p95_latency_ms"),
			goqu.L("CAST(AVG(latency_ms) AS DECIMAL(12,2))").As("avg_latency_ms"),
			goqu.MAX(goqu.C("latency_ms")).As("max_latency_ms"),
			goqu.COUNT(goqu.Star()).As("request_count"),
		).
		GroupBy(goqu.C("hour_start"), goqu.C("service_name"), goqu.C("endpoint")).
		Order(goqu.C("hour_start").Asc(), goqu.C("service_name").Asc(), goqu.C("endpoint").Asc()).
		Prepared(true).
		ToSQL()
}
