package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/spec-kit/support-ops-api/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// executor runs parameterized statements and scans rows by column name.
// Driver errors are returned unmodified so the caller can classify them.
type executor struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func newExecutor(db *sqlx.DB, logger *zap.Logger) executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return executor{db: db, logger: logger}
}

// selectAll scans every row into dest, a pointer to a slice.
func (e executor) selectAll(ctx context.Context, dest any, query string, args []any) error {
	e.logger.Debug("sql query", zap.String("sql", query), zap.Any("args", args))
	if err := e.db.SelectContext(ctx, dest, query, args...); err != nil {
		e.logger.Error("sql query failed", zap.Error(err), zap.String("sql", query), zap.Any("args", args))
		return err
	}
	return nil
}

// selectOne scans the first row into dest and reports whether a row existed.
func (e executor) selectOne(ctx context.Context, dest any, query string, args []any) (bool, error) {
	e.logger.Debug("sql query", zap.String("sql", query), zap.Any("args", args))
	err := e.db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		e.logger.Error("sql query failed", zap.Error(err), zap.String("sql", query), zap.Any("args", args))
		return false, err
	}
	return true, nil
}

// withPage appends a literal LIMIT/OFFSET. The values come from a clamped
// domain.Page, never from request text.
func withPage(query string, page domain.Page) string {
	return fmt.Sprintf("%s LIMIT %d OFFSET %d", query, page.Size(), page.Offset())
}

// withLimit appends a literal LIMIT.
func withLimit(query string, limit uint) string {
	return fmt.Sprintf("%s LIMIT %d", query, limit)
}
