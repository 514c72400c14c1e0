package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/maitaibeauty/site/internal/session"
)

// SessionHeader carries the admin token on every authenticated request.
const SessionHeader = "X-Session-Id"

// RequireSession rejects requests whose token header is missing, unknown, or
// revoked. The response is the same generic 401 in every case so callers
// cannot tell which one applied.
func RequireSession(registry *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionHeader)
			if token == "" || !registry.IsValid(token) {
				unauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
