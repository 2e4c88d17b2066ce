package internal_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tldr/internal"
	"github.com/dmitrymomot/tldr/pkg/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := internal.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, ":1488", cfg.Addr)
	require.Equal(t, "en", cfg.DefaultLocale)
	require.Equal(t, "dist", cfg.StaticDir)
	require.Equal(t, logger.FormatJSON, cfg.LogFormat)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "production", cfg.Sentry.Environment)
	require.Equal(t, slog.LevelWarn, cfg.Sentry.MinLevel)

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, level)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TLDR_ADDR", ":9000")
	t.Setenv("TLDR_DEFAULT_LOCALE", "ru")
	t.Setenv("TLDR_LOG_LEVEL", "debug")
	t.Setenv("TLDR_LOG_FORMAT", "text")
	t.Setenv("TLDR_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := internal.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.Addr)
	require.Equal(t, "ru", cfg.DefaultLocale)
	require.Equal(t, logger.FormatText, cfg.LogFormat)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)
	require.NotNil(t, cfg.Logger())
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TLDR_LOCALES_DIR=/srv/locales\nTLDR_ADDR=:7000\n"), 0o600))
	t.Setenv("TLDR_ADDR", ":8000")
	t.Setenv("TLDR_LOCALES_DIR", "")
	os.Unsetenv("TLDR_LOCALES_DIR")

	cfg, err := internal.LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "/srv/locales", cfg.LocalesDir)
	require.Equal(t, ":8000", cfg.Addr)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad level", "TLDR_LOG_LEVEL", "loud"},
		{"bad format", "TLDR_LOG_FORMAT", "xml"},
		{"bad duration", "TLDR_SHUTDOWN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := internal.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			require.ErrorIs(t, err, internal.ErrParsingConfig)
		})
	}
}
