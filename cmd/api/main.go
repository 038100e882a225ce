package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/support-ops-api/internal/api/http"
	"github.com/spec-kit/support-ops-api/internal/api/http/handlers"
	"github.com/spec-kit/support-ops-api/internal/config"
	"github.com/spec-kit/support-ops-api/internal/observability"
	"github.com/spec-kit/support-ops-api/internal/persistence"
	"github.com/spec-kit/support-ops-api/internal/repository"
	"github.com/spec-kit/support-ops-api/internal/service"
)

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "support-ops-api",
		Short:         "Read-only reporting API over support tickets and service logs",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	root.AddCommand(&cobra.Command{
		Use:   "ping",
		Short: "Check connectivity to the reporting store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ping(cmd.Context())
		},
	})
	return root
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return cfg, logger.With(zap.String("service", cfg.App.Name)), nil
}

func ping(parent context.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(parent, startupTimeout)
	defer cancel()

	db, err := persistence.NewDatabase(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("reporting store unreachable", zap.Error(err))
		return err
	}
	db.Close()
	return nil
}

func serve(parent context.Context) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	flushSentry, err := observability.InitSentry(cfg.Sentry, cfg.App.Version)
	if err != nil {
		logger.Warn("sentry disabled", zap.Error(err))
	}
	defer flushSentry()

	ctx, cancel := context.WithTimeout(parent, startupTimeout)
	db, err := persistence.NewDatabase(ctx, cfg.Database, logger)
	cancel()
	if err != nil {
		logger.Error("failed to connect reporting store", zap.Error(err))
		return err
	}
	defer db.Close()

	ticketRepo := repository.NewTicketRepository(db.DB, db.Dialect, logger)
	overviewRepo := repository.NewOverviewRepository(db.DB, db.Dialect, logger)
	logRepo := repository.NewLogRepository(db.DB, db.Dialect, logger)

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:     logger,
		Metrics:    metrics,
		Timeout:    cfg.App.RequestTimeout(),
		Production: cfg.App.IsProduction(),
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, db, nil),
		Overview: handlers.NewOverviewHandler(service.NewOverviewService(overviewRepo)),
		Tickets:  handlers.NewTicketsHandler(service.NewTicketService(ticketRepo, nil)),
		Logs:     handlers.NewLogsHandler(service.NewLogService(logRepo)),
		Metrics:  metrics,
	})

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		listenErr <- app.Listen(cfg.App.Addr())
	}()

	sigCtx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-listenErr:
		logger.Error("fiber listen", zap.Error(err))
		return err
	case <-sigCtx.Done():
		logger.Info("shutting down")
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("shutdown", zap.Error(err))
		return err
	}
	return nil
}
