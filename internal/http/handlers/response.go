// Package handlers provides the HTTP handler implementations for the médicos
// directory. This file defines the shared response utilities: the JSON error
// envelope used by non-HTML endpoints and the render helpers for pages.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitaclinic/go-medicos-web/internal/http/middleware"
)

// ErrorResponse is the JSON error envelope for non-HTML endpoints.
//
// Fields:
//   - RequestID: correlation ID echoed from X-Request-ID, to match server
//     logs with client-side errors.
//   - Code: a stable, machine-readable string (see errors.go constants).
//   - Message: a human-readable description, safe for display.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

// fail aborts the request with a structured JSON error. Server errors
// (>= 500) are logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	resp := ErrorResponse{
		RequestID: c.Writer.Header().Get("X-Request-ID"),
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(), for router-level fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// unavailable renders the degraded "directorio no disponible" page with the
// given status and logs the underlying failure.
func unavailable(c *gin.Context, status int, err error) {
	lg := middleware.LoggerFrom(c)
	lg.Error().Err(err).Int("status", status).Msg("storage unavailable")
	c.HTML(status, "no_disponible.html", gin.H{})
}
