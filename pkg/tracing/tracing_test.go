package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// newRecorder 安装一个把span记录在内存中的TracerProvider
func newRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	Install(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return rec
}

// TestInitTracer collector不可达时初始化也应成功(exporter惰性连接)
func TestInitTracer(t *testing.T) {
	shutdown, err := InitTracer("bookshelf-test", "localhost:4317")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartSpan(t *testing.T) {
	rec := newRecorder(t)

	t.Run("子Span继承TraceID", func(t *testing.T) {
		ctx, root := StartSpan(context.Background(), "root")
		_, child := StartSpan(ctx, "child")

		assert.Equal(t, root.SpanContext().TraceID(), child.SpanContext().TraceID())
		assert.NotEqual(t, root.SpanContext().SpanID(), child.SpanContext().SpanID())

		child.End()
		root.End()
	})

	ended := rec.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "child", ended[0].Name())
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}

func TestEndSpan(t *testing.T) {
	rec := newRecorder(t)

	_, ok := StartSpan(context.Background(), "ok")
	EndSpan(ok, nil)

	_, failed := StartSpan(context.Background(), "failed")
	EndSpan(failed, errors.New("db down"))

	ended := rec.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Equal(t, "db down", ended[1].Status().Description)
	assert.Len(t, ended[1].Events(), 1, "RecordError会写入exception事件")
}

func TestExtractIDs(t *testing.T) {
	t.Run("没有span", func(t *testing.T) {
		assert.Empty(t, ExtractTraceID(context.Background()))
		assert.Empty(t, ExtractSpanID(context.Background()))
	})

	t.Run("有span", func(t *testing.T) {
		newRecorder(t)
		ctx, span := StartSpan(context.Background(), "op")
		defer span.End()

		assert.Equal(t, span.SpanContext().TraceID().String(), ExtractTraceID(ctx))
		assert.Equal(t, span.SpanContext().SpanID().String(), ExtractSpanID(ctx))
		assert.Len(t, ExtractTraceID(ctx), 32)
	})
}
