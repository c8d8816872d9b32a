package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", ServiceName: "test-service", Version: "1.0.0"}, &buf)

	log.Info("test message", "key", "value", "number", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.EqualValues(t, 42, entry["number"])
}

func TestTextFormatAndDefaults(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Format: "text"}, &buf)
	log.Info("hello")
	out := buf.String()
	assert.Contains(t, out, "service=valley-farm")
	assert.Contains(t, out, "version=dev")
	assert.False(t, strings.HasPrefix(out, "{"))
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, Config{Level: in}.LogLevel(), in)
	}
}

func TestLevelFiltersRecords(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn"}, &buf)
	log.Info("quiet")
	assert.Empty(t, buf.String())
	log.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestSessionContext(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(New(Config{Format: "json"}, &buf))

	id := NewSessionID()
	ctx := WithSessionID(context.Background(), id)
	got, ok := SessionIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)

	FromContext(ctx).Info("joined")
	assert.Contains(t, buf.String(), `"session_id":"`+id+`"`)

	_, ok = SessionIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "farm.log")
	log, closer, err := OpenFile(DefaultConfig(), path)
	require.NoError(t, err)
	log.Info("first")
	require.NoError(t, closer.Close())

	log, closer, err = OpenFile(DefaultConfig(), path)
	require.NoError(t, err)
	log.Info("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestDefaultFileUsesXDGState(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	path, err := DefaultFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "valley-farm", "valley-farm.log"), path)
}
