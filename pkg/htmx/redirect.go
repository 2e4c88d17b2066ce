package htmx

import (
	"net/http"
	"net/url"
)

// Redirect performs a redirect for both htmx and regular requests.
func Redirect(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if IsHTMX(r) {
		w.Header().Set(HeaderHXRedirect, targetURL)
		// htmx ignores 3xx responses; the client follows the header
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, targetURL, status)
}

// RedirectBack sends the client to the page it came from, or to fallback.
func RedirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	Redirect(w, r, BackURL(r, fallback), http.StatusSeeOther)
}

// BackURL returns the path and query of the page the request came from:
// HX-Current-URL for htmx requests, the Referer otherwise. Foreign hosts and
// unparsable values yield fallback.
func BackURL(r *http.Request, fallback string) string {
	raw := r.Referer()
	if IsHTMX(r) && r.Header.Get(HeaderHXCurrentURL) != "" {
		raw = r.Header.Get(HeaderHXCurrentURL)
	}

	ref, err := url.Parse(raw)
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return fallback
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
