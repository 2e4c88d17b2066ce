// Package logger builds log/slog loggers with per-call context attributes and
// optional Sentry fan-out.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(slog.String("service", "tldr")),
//		logger.WithContextExtractors(middlewares.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "request processed", slog.Int("status", 200))
//	// {"level":"INFO","msg":"request processed","service":"tldr","status":200,"request_id":"..."}
//
// # Context Extractors
//
// A ContextExtractor returns an attribute for the current context, or false to
// skip it. Extractors run on every record, so request-scoped values such as
// the request id and the resolved locale are always current. ContextValue
// covers the common case of a string stored under a context key.
//
// # Sentry
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	}, opts...)
//	defer logger.FlushSentry(2 * time.Second)
//
// Errors create Sentry events, records at MinLevel and above are stored as
// Sentry logs. Without a DSN the logger only writes locally.
//
// # Discarding Output
//
// NewNope returns a logger that drops everything, for tests and optional sinks.
package logger
