package observability

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/spec-kit/support-ops-api/internal/config"
)

const sentryFlushTimeout = 2 * time.Second

// InitSentry initialises error reporting when a DSN is configured. The
// returned func flushes buffered events and is safe to call either way.
func InitSentry(cfg config.SentryConfig, release string) (func(), error) {
	if cfg.DSN == "" {
		return func() {}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     release,
	})
	if err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(sentryFlushTimeout) }, nil
}

// CaptureError reports err to Sentry. Without an initialised client it does nothing.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}
