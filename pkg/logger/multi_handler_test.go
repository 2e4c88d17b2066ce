package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiHandler(t *testing.T) {
	t.Parallel()

	debug := &bytes.Buffer{}
	warn := &bytes.Buffer{}
	h := newMultiHandler(
		slog.NewJSONHandler(debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)

	require.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	log := slog.New(h).With(slog.String("k", "v"))
	log.Info("info")
	require.NotZero(t, debug.Len())
	require.Zero(t, warn.Len())

	log.Warn("warn")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(warn.Bytes(), &entry))
	require.Equal(t, "v", entry["k"])
	require.Equal(t, "warn", entry["msg"])
}
