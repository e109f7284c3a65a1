package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuffer_KeepsNewestFirst(t *testing.T) {
	b := NewBuffer(2)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	b.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}

	b.Error("first")
	b.Error("second")
	b.Error("third")

	got := b.Recent()
	require.Len(t, got, 2)
	assert.Equal(t, "third", got[0].Text)
	assert.Equal(t, "second", got[1].Text)
	assert.True(t, got[0].At.After(got[1].At))
}

func TestBuffer_Empty(t *testing.T) {
	b := NewBuffer(0)
	assert.NotNil(t, b.Recent())
	assert.Empty(t, b.Recent())

	b.Error("a")
	b.Error("b")
	assert.Len(t, b.Recent(), 1)
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	NewLogNotifier(zap.New(core)).Error("failed to add product")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "user notified", entry.Message)
	assert.Equal(t, "notify", entry.LoggerName)
	assert.Equal(t, "failed to add product", entry.ContextMap()["message"])
}

func TestMulti(t *testing.T) {
	a, b := NewBuffer(5), NewBuffer(5)
	Multi{a, b}.Error("failed to remove product")

	assert.Len(t, a.Recent(), 1)
	assert.Len(t, b.Recent(), 1)
}
