package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDialectFragments(t *testing.T) {
	d, err := DialectFor("mysql")
	require.NoError(t, err)

	assert.Equal(t, "DATE_FORMAT(t.created_at, '%Y-%m-%d')", d.DayBucket("t.created_at"))
	assert.Equal(t, "DATE_FORMAT(event_time, '%Y-%m-%d %H:00:00')", d.HourBucket("event_time"))
	assert.Equal(t, "TIMESTAMPDIFF(SECOND, a, b)", d.SecondsBetween("a", "b"))
	assert.Equal(t, "UTC_TIMESTAMP()", d.UTCNow())
}

func TestPostgresDialectFragments(t *testing.T) {
	d, err := DialectFor("postgres")
	require.NoError(t, err)

	assert.Equal(t, "to_char(t.created_at, 'YYYY-MM-DD')", d.DayBucket("t.created_at"))
	assert.Equal(t, "to_char(date_trunc('hour', event_time), 'YYYY-MM-DD HH24:00:00')", d.HourBucket("event_time"))
	assert.Equal(t, "CAST(EXTRACT(EPOCH FROM (b - a)) AS BIGINT)", d.SecondsBetween("a", "b"))
}

func TestUnknownDialect(t *testing.T) {
	_, err := DialectFor("sqlite")
	require.Error(t, err)
}

func TestDriverName(t *testing.T) {
	assert.Equal(t, "pgx", driverName("postgres"))
	assert.Equal(t, "mysql", driverName("mysql"))
}
