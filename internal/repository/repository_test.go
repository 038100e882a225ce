package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/support-ops-api/internal/persistence"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return sqlx.NewDb(db, "sqlmock"), mock
}

func mustDialect(t *testing.T, driver string) persistence.Dialect {
	t.Helper()
	d, err := persistence.DialectFor(driver)
	require.NoError(t, err)
	return d
}

func nopLogger() *zap.Logger { return zap.NewNop() }

func strPtr(s string) *string { return &s }
