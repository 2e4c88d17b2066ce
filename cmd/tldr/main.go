// Command tldr serves the localized demo page and the translation API.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/tldr/internal"
	"github.com/dmitrymomot/tldr/middlewares"
	"github.com/dmitrymomot/tldr/pkg/i18n"
	"github.com/dmitrymomot/tldr/pkg/logger"
)

const sentryFlushTimeout = 2 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("application error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return err
	}

	log := cfg.Logger(middlewares.RequestIDExtractor(), middlewares.LocaleExtractor())
	slog.SetDefault(log)
	defer logger.FlushSentry(sentryFlushTimeout)

	lib, err := internal.LoadLibrary(cfg.LocalesDir)
	if err != nil {
		return err
	}
	log.Info("locales loaded", slog.Any("locales", lib.Tags()))

	store := i18n.NewStore(
		i18n.State{Locale: cfg.DefaultLocale, Library: lib},
		i18n.WithLogger(log),
	)
	unsubscribe := store.Subscribe(func(s i18n.State) {
		log.Info("locales updated", slog.Any("locales", s.Library.Tags()))
	})
	defer unsubscribe()

	server := internal.NewServer(store, log, internal.WithStaticDir(cfg.StaticDir))

	return internal.Run(ctx, internal.RunConfig{
		Handler:         server.Routes(),
		Addr:            cfg.Addr,
		Logger:          log,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Reload:          internal.ReloadLocales(store, cfg.LocalesDir),
		ShutdownHooks: []func(context.Context) error{
			func(context.Context) error {
				logger.FlushSentry(sentryFlushTimeout)
				return nil
			},
		},
	})
}
