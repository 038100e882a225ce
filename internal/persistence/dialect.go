package persistence

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/spec-kit/support-ops-api/internal/config"
)

// Dialect couples a goqu builder with the store-specific SQL fragments the
// reporting queries need.
type Dialect struct {
	builder        goqu.DialectWrapper
	dayBucket      func(col string) string
	hourBucket     func(col string) string
	secondsBetween func(from, to string) string
	utcNow         string
}

// DialectFor returns the dialect matching a configured driver.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverMySQL:
		return Dialect{
			builder: goqu.Dialect("mysql"),
			dayBucket: func(col string) string {
				return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-%%d')", col)
			},
			hourBucket: func(col string) string {
				return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-%%d %%H:00:00')", col)
			},
			secondsBetween: func(from, to string) string {
				return fmt.Sprintf("TIMESTAMPDIFF(SECOND, %s, %s)", from, to)
			},
			utcNow: "UTC_TIMESTAMP()",
		}, nil
	case config.DriverPostgres:
		return Dialect{
			builder: goqu.Dialect("postgres"),
			dayBucket: func(col string) string {
				return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", col)
			},
			hourBucket: func(col string) string {
				return fmt.Sprintf("to_char(date_trunc('hour', %s), 'YYYY-MM-DD HH24:00:00')", col)
			},
			secondsBetween: func(from, to string) string {
				return fmt.Sprintf("CAST(EXTRACT(EPOCH FROM (%s - %s)) AS BIGINT)", to, from)
			},
			utcNow: "(NOW() AT TIME ZONE 'UTC')",
		}, nil
	default:
		return Dialect{}, fmt.Errorf("no SQL dialect for driver %q", driver)
	}
}

// Builder returns the goqu builder for the dialect.
func (d Dialect) Builder() goqu.DialectWrapper { return d.builder }

// DayBucket formats a timestamp column as YYYY-MM-DD.
func (d Dialect) DayBucket(col string) string { return d.dayBucket(col) }

// HourBucket formats a timestamp column as "YYYY-MM-DD HH:00:00".
func (d Dialect) HourBucket(col string) string { return d.hourBucket(col) }

// SecondsBetween returns whole seconds elapsed from one timestamp expression to another.
func (d Dialect) SecondsBetween(from, to string) string { return d.secondsBetween(from, to) }

// UTCNow is the store's current UTC instant.
func (d Dialect) UTCNow() string { return d.utcNow }
