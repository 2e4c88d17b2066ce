package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/tldr/pkg/logger"
)

// Config is the demo server configuration, read from the environment.
type Config struct {
	Addr            string        `env:"TLDR_ADDR" envDefault:":1488"`
	DefaultLocale   string        `env:"TLDR_DEFAULT_LOCALE" envDefault:"en"`
	LocalesDir      string        `env:"TLDR_LOCALES_DIR"`
	StaticDir       string        `env:"TLDR_STATIC_DIR" envDefault:"dist"`
	LogLevel        string        `env:"TLDR_LOG_LEVEL" envDefault:"info"`
	LogFormat       logger.Format `env:"TLDR_LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"TLDR_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Sentry          logger.SentryConfig
}

// LoadConfig reads .env files (missing ones are skipped, defaults to ".env")
// and parses the environment into a Config. Variables already set in the
// environment win over .env values.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %q: %w", ErrLoadEnvFile, f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if _, err := cfg.Level(); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	switch cfg.LogFormat {
	case logger.FormatJSON, logger.FormatText:
	default:
		return Config{}, fmt.Errorf("%w: unknown log format %q", ErrParsingConfig, cfg.LogFormat)
	}

	return cfg, nil
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}

// Logger builds the application logger from the configuration.
func (c Config) Logger(extractors ...logger.ContextExtractor) *slog.Logger {
	level, _ := c.Level()
	return logger.NewWithSentry(c.Sentry,
		logger.WithLevel(level),
		logger.WithFormat(c.LogFormat),
		logger.WithAttr(slog.String("service", "tldr")),
		logger.WithContextExtractors(extractors...),
	)
}
