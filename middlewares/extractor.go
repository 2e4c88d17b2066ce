package middlewares

import "net/http"

// Source extracts a value from a request.
// It returns ("", false) when the value is not present.
type Source func(r *http.Request) (string, bool)

// FromHeader returns a source that reads a request header.
func FromHeader(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// FromQuery returns a source that reads a query parameter.
func FromQuery(name string) Source {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie returns a source that reads a plain cookie.
func FromCookie(name string) Source {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// firstOf returns the first value accepted by accept, trying sources in order.
func firstOf(r *http.Request, sources []Source, accept func(string) (string, bool)) (string, bool) {
	for _, src := range sources {
		v, ok := src(r)
		if !ok || v == "" {
			continue
		}
		if out, ok := accept(v); ok {
			return out, true
		}
	}
	return "", false
}
