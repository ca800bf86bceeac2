// Package handlers defines the HTTP-layer error codes used by the JSON
// responses of this application (the delete endpoint, route fallbacks, and
// panic recovery). Rendered HTML pages carry their messages inline instead.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeUnavailable      = "storage_unavailable"
	ErrCodeInternal         = "internal_error"
)
