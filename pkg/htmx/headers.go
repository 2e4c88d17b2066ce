package htmx

const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXCurrentURL = "HX-Current-URL"
	HeaderHXRedirect   = "HX-Redirect"
)
