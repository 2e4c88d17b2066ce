// Package internal implements the tldr demo server: environment
// configuration, dictionary loading and reload, HTTP routes, the demo page
// and the graceful server runtime.
//
// Routes:
//
//	GET  /                  demo page (?count=N, ?lang=xx)
//	POST /locale?lang=xx    remember the locale in a cookie and redirect back
//	GET  /api/locales       available locales as JSON
//	GET  /api/translate     ?message=...&arg=... rendered for the request locale
//	GET  /health/live       liveness
//	GET  /health/ready      readiness (dictionaries loaded)
//	GET  /static/*          files from TLDR_STATIC_DIR, when present
package internal
