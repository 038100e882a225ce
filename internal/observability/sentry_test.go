package observability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-ops-api/internal/config"
)

func TestInitSentryWithoutDSN(t *testing.T) {
	flush, err := InitSentry(config.SentryConfig{}, "dev")
	require.NoError(t, err)
	assert.NotPanics(t, flush)
	assert.NotPanics(t, func() { CaptureError(errors.New("boom"), map[string]string{"route": "/"}) })
}

func TestInitSentryRejectsBadDSN(t *testing.T) {
	_, err := InitSentry(config.SentryConfig{DSN: "://not-a-dsn"}, "dev")
	assert.Error(t, err)
}
