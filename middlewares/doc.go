// Package middlewares provides net/http middlewares for the demo server.
//
// # Request ID
//
// RequestID assigns an ID to each request, keeping an upstream X-Request-ID or
// X-Correlation-ID when present and generating a UUID otherwise. Combine it
// with RequestIDExtractor to get "request_id" on every log record:
//
//	log := logger.New(logger.WithContextExtractors(middlewares.RequestIDExtractor()))
//	r.Use(middlewares.RequestID())
//
// # Recover
//
// Recover turns panics into a logged error and a 500 response. A custom
// handler receives the PanicError:
//
//	r.Use(middlewares.Recover(log, middlewares.WithRecoverHandler(renderError)))
//
// # Locale
//
// Locale resolves the request locale from the "lang" query parameter, the
// "lang" cookie, the Accept-Language header and finally the default locale.
// The locale and a translator bound to it are stored in the request context:
//
//	r.Use(middlewares.Locale(store))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		tr := middlewares.GetTranslator(r.Context())
//		fmt.Fprint(w, tr.S("Hello!"))
//	}
package middlewares
