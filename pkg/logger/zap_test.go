package logger

import (
	"context"
	"testing"

	"github.com/Gunvolt24/zomato/pkg/ctxmeta"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := wrap(zap.New(core), false)

	ctx := ctxmeta.WithRequestID(context.Background(), "req-42")
	l.Infof(ctx, "order %d placed", 7)
	l.Warnf(context.Background(), "no request id")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	require.Equal(t, "order 7 placed", entries[0].Message)
	require.Equal(t, "req-42", entries[0].ContextMap()["request_id"])

	_, hasRID := entries[1].ContextMap()["request_id"]
	require.False(t, hasRID)
	require.Equal(t, zap.WarnLevel, entries[1].Level)
}

func TestNewZapLogger_DevAndProd(t *testing.T) {
	for _, prod := range []bool{false, true} {
		l, cleanup, err := NewZapLogger(prod)
		require.NoError(t, err)
		require.NotNil(t, l.Base())
		require.NotNil(t, l.Sugared())
		l.Errorf(context.Background(), "smoke %v", prod)
		_ = cleanup() // Sync на stderr может вернуть ошибку в CI — не критично
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Infof(nil, "must not panic") //nolint:staticcheck // nil-контекст допустим
}
