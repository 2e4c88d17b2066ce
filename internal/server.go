package internal

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/tldr/middlewares"
	"github.com/dmitrymomot/tldr/pkg/i18n"
	"github.com/dmitrymomot/tldr/pkg/markup"
)

// Server serves the demo page and the translation API.
type Server struct {
	store     *i18n.Store
	log       *slog.Logger
	markup    *markup.Renderer
	staticDir string
	started   time.Time
	now       func() time.Time
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithStaticDir serves files from dir under /static/ when it exists.
func WithStaticDir(dir string) ServerOption {
	return func(s *Server) { s.staticDir = dir }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) ServerOption {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// NewServer returns a server rendering with the translators of store.
func NewServer(store *i18n.Store, log *slog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		store:  store,
		log:    log,
		markup: markup.New(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.started = s.now()
	return s
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RealIP,
		middlewares.RequestID(),
		logRequests(s.log),
		middlewares.Recover(s.log),
	)

	r.Get("/health/live", livenessHandler())
	r.Get("/health/ready", readinessHandler(s.log, Checks{
		"locales": s.localesCheck,
	}))

	if s.staticDir != "" {
		if info, err := os.Stat(s.staticDir); err == nil && info.IsDir() {
			r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir))))
		}
	}

	r.Group(func(r chi.Router) {
		r.Use(middlewares.Locale(s.store, middlewares.WithLocaleLogger(s.log)))

		r.Get("/", s.index)
		r.Post("/locale", s.setLocale)

		r.Route("/api", func(r chi.Router) {
			r.Use(middleware.NoCache)
			r.Get("/locales", s.listLocales)
			r.Get("/translate", s.translate)
		})
	})

	return r
}

// logRequests logs one line per request after it completes.
func logRequests(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
