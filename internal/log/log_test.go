package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lesiw.io/pathuri/internal/log"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"":        slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tcs {
		got, err := log.GetLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := log.GetLevel("loud")
	require.ErrorIs(t, err, log.ErrUnknownLevel)
}

func TestCreateHandler(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h, err := log.CreateHandler(&buf, "info", "json")
		require.NoError(t, err)

		slog.New(h).Info("joined", "path", "/etc/passwd")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "joined", rec["msg"])
		assert.Equal(t, "/etc/passwd", rec["path"])
	})

	t.Run("text filters below level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h, err := log.CreateHandler(&buf, "warn", "text")
		require.NoError(t, err)

		logger := slog.New(h)
		logger.Info("hidden")
		assert.Empty(t, buf.String())

		logger.Warn("shown", "rule", "/rustc/")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "/rustc/")
	})

	t.Run("logfmt", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h, err := log.CreateHandler(&buf, "debug", "logfmt")
		require.NoError(t, err)

		slog.New(h).Debug("push", "elem", "etc")
		assert.Contains(t, buf.String(), "elem=etc")
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := log.CreateHandler(&bytes.Buffer{}, "info", "xml")
		require.ErrorIs(t, err, log.ErrUnknownFormat)
	})

	t.Run("unknown level", func(t *testing.T) {
		t.Parallel()

		_, err := log.CreateHandler(&bytes.Buffer{}, "loud", "text")
		require.ErrorIs(t, err, log.ErrUnknownLevel)
	})
}
