package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_ExtractsContextFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZapLoggerFromCore(core)

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithOrderID(ctx, "ord-9")
	ctx = WithWorkerID(ctx, 3)

	l.Infof(ctx, "quote computed: %s", "1500")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "quote computed: 1500", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "ord-9", fields["order_id"])
	assert.EqualValues(t, 3, fields["worker_id"])
	assert.Equal(t, "req-1", RequestID(ctx))
}

func TestZapLogger_TraceIDFromSpan(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZapLoggerFromCore(core)

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	l.Infof(ctx, "traced")
	l.Infof(context.Background(), "untraced")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", logs.All()[0].ContextMap()["trace_id"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "trace_id")
}

func TestNewZapLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger("verbose")
	require.NoError(t, err)
	assert.NotNil(t, l)
}
