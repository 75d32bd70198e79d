package auth

import (
	"net/http"
	"strings"

	"github.com/clockbook/clockbook/server/internal/api/respond"
)

// Middleware enforces a bearer token on every request using the given
// Authorizer. Install it only when authentication is configured.
func Middleware(a Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if err := a.Authorize(r.Context(), token); err != nil {
				respond.WriteUnauthorized(w, "invalid or missing API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}
