package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Run("json格式", func(t *testing.T) {
		log, err := New(Config{Level: "debug", Format: "json", Output: "stderr"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zap.DebugLevel))
	})

	t.Run("默认info级别", func(t *testing.T) {
		log, err := New(Config{Format: "console"})
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zap.DebugLevel))
		assert.True(t, log.Core().Enabled(zap.InfoLevel))
	})

	t.Run("非法级别", func(t *testing.T) {
		_, err := New(Config{Level: "verbose"})
		assert.Error(t, err)
	})
}

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).With(zap.String("request_id", "abc"))

	ctx := WithContext(context.Background(), log)
	FromContext(ctx).Info("hello")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["request_id"])

	assert.NotNil(t, FromContext(context.Background()))
}
