// Package htmx answers htmx requests with header driven redirects and falls
// back to plain HTTP redirects for everything else.
package htmx

import "net/http"

// IsHTMX returns true if the request originated from htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}
