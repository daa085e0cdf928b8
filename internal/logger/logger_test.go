package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Setup("debug")
	logrus.SetOutput(&buf)
	t.Cleanup(func() { Setup("info") })
	return &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetupLevels(t *testing.T) {
	for level, want := range map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"verbose": logrus.InfoLevel,
	} {
		Setup(level)
		assert.Equal(t, want, logrus.GetLevel(), level)
	}
	Setup("info")
}

func TestWithContext(t *testing.T) {
	buf := capture(t)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, UserIDKey, uint(7))
	WithContext(ctx).Info("hello")

	entry := lastEntry(t, buf)
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, float64(7), entry["user"])
}

func TestWithContextAnonymous(t *testing.T) {
	buf := capture(t)

	WithContext(context.Background()).Warn("no user")

	entry := lastEntry(t, buf)
	assert.Equal(t, "anonymous", entry["user"])
	assert.NotContains(t, entry, "request_id")
}

func TestFieldHelpers(t *testing.T) {
	buf := capture(t)

	New().
		WithField("component_id", 3).
		WithFields(map[string]interface{}{"chat_id": 42}).
		WithError(errors.New("forbidden")).
		Error("send failed")

	entry := lastEntry(t, buf)
	assert.Equal(t, float64(3), entry["component_id"])
	assert.Equal(t, float64(42), entry["chat_id"])
	assert.Equal(t, "forbidden", entry["error"])
	assert.Equal(t, "error", entry["level"])
}
