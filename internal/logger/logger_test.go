package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultLoggerIsUsableBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("before initialize")
		ErrorCtx(context.Background(), nil)
	})
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true, Service: "test"}))
	assert.NotNil(t, Default())
	assert.NotNil(t, FromContext(context.Background()))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })

	ctx := WithFields(context.Background(), zap.String("request_id", "req-1"))
	ctx = WithFields(ctx, zap.String("actor", "alice"))
	InfoCtx(ctx, "bought parcel")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "alice", fields["actor"])
}
