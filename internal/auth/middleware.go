// Package auth provides HTTP middleware for bearer token authentication on
// the streamable-HTTP transport.
package auth

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// NewAuthMiddleware returns an HTTP middleware enforcing bearer token
// authentication. An empty configured token disables authentication entirely
// and every request passes through.
//
// When enabled, the request must carry exactly:
//
//	Authorization: Bearer <token>
//
// The "Bearer" prefix is case-sensitive with a single following space. Any
// deviation, or a token mismatch, yields 401 Unauthorized without invoking
// the next handler. Token comparison is constant-time.
//
// logger emits DEBUG-level messages on rejected requests; nil means
// slog.Default().
func NewAuthMiddleware(token string, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, prefix) {
				logger.Debug("auth rejected: missing or malformed Authorization header", "remote", r.RemoteAddr)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			provided := header[len(prefix):]
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Debug("auth rejected: invalid token", "remote", r.RemoteAddr)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
