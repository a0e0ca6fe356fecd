package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	log := NewLogger("test-role")
	require.NotNil(t, log)

	child := log.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, log, child)
}

func TestNop(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// must be safe to use without any output sink
	log.Info().Str("key", "value").Msg("discarded")
}

func TestFromContext(t *testing.T) {
	log := Nop()

	ctx := log.WithContext(context.Background())
	assert.NotNil(t, FromContext(ctx))

	// a bare context still yields a usable logger
	assert.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest(t *testing.T) {
	log := Nop()

	req := httptest.NewRequest("GET", "/health", nil)
	req = req.WithContext(log.WithContext(req.Context()))

	assert.NotNil(t, FromRequest(req))
}
