package persistence

import (
	"context"
	"errors"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/spec-kit/support-ops-api/internal/config"
)

// Database wraps the pooled connection to the reporting store.
type Database struct {
	DB      *sqlx.DB
	Dialect Dialect
}

// NewDatabase opens the pool for the configured driver and verifies it with a ping.
func NewDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Database, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn, err := cfg.ConnectionString()
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName(cfg.Driver), dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxIdleSec > 0 {
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime())
	}
	if cfg.ConnMaxLifeSec > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime())
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("connected to reporting store",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name))
	return &Database{DB: db, Dialect: dialect}, nil
}

// Close releases pool resources.
func (d *Database) Close() {
	if d != nil && d.DB != nil {
		_ = d.DB.Close()
	}
}

// Ping verifies store connectivity.
func (d *Database) Ping(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return errors.New("database not configured")
	}
	return d.DB.PingContext(ctx)
}

// driverName maps the configured driver to the registered database/sql driver.
func driverName(driver string) string {
	if driver == config.DriverPostgres {
		return "pgx"
	}
	return driver
}
