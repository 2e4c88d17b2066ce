package middlewares

import (
	"cmp"
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/tldr/pkg/i18n"
	"github.com/dmitrymomot/tldr/pkg/logger"
)

type (
	localeKey     struct{}
	translatorKey struct{}
)

// DefaultLocaleCookie is the cookie remembering the chosen locale.
const DefaultLocaleCookie = "lang"

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Logger  *slog.Logger
	Default string   // Locale used when no source matches (default: store's active locale)
	Sources []Source // Tried in order before Accept-Language
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleDefault sets the fallback locale.
func WithLocaleDefault(locale string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Default = locale
	}
}

// WithLocaleSources replaces the explicit locale sources.
func WithLocaleSources(sources ...Source) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Sources = sources
	}
}

// WithLocaleLogger sets the logger handed to request translators.
func WithLocaleLogger(l *slog.Logger) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Logger = l
	}
}

// Locale returns middleware that resolves the request locale and stores it,
// together with a translator bound to it, in the request context.
//
// Resolution order: the "lang" query parameter, the "lang" cookie, the
// Accept-Language header, the default. Explicit values must name a library
// locale or be a language tag negotiable against one.
func Locale(store *i18n.Store, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{
		Sources: []Source{
			FromQuery(DefaultLocaleCookie),
			FromCookie(DefaultLocaleCookie),
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := store.State()
			locale := ResolveLocale(r, state, cfg.Sources, cmp.Or(cfg.Default, state.Locale))

			ctx := context.WithValue(r.Context(), localeKey{}, locale)

			topts := []i18n.TranslatorOption{i18n.WithContext(ctx)}
			if cfg.Logger != nil {
				topts = append(topts, i18n.WithLogger(cfg.Logger))
			}
			ctx = context.WithValue(ctx, translatorKey{}, store.TranslatorFor(locale, topts...))

			if d, ok := state.Library[locale]; ok {
				w.Header().Set("Content-Language", d.LanguageTag)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ResolveLocale picks the locale for r from sources, then Accept-Language,
// then fallback.
func ResolveLocale(r *http.Request, state i18n.State, sources []Source, fallback string) string {
	accept := func(v string) (string, bool) {
		if _, ok := state.Library[v]; ok {
			return v, true
		}
		if id := i18n.Negotiate(v, state.Library, ""); id != "" {
			return id, true
		}
		return "", false
	}

	if locale, ok := firstOf(r, sources, accept); ok {
		return locale
	}
	if id := i18n.Negotiate(r.Header.Get("Accept-Language"), state.Library, ""); id != "" {
		return id
	}
	return fallback
}

// GetLocale returns the resolved locale stored in ctx, or "".
func GetLocale(ctx context.Context) string {
	if v, ok := ctx.Value(localeKey{}).(string); ok {
		return v
	}
	return ""
}

// GetTranslator returns the request translator, or nil when the Locale
// middleware did not run.
func GetTranslator(ctx context.Context) *i18n.Translator {
	if v, ok := ctx.Value(translatorKey{}).(*i18n.Translator); ok {
		return v
	}
	return nil
}

// LocaleExtractor adds "locale" to log records.
func LocaleExtractor() logger.ContextExtractor {
	return logger.ContextValue("locale", localeKey{})
}
