package middleware

import (
	"net/http"
	"strings"

	"scribe/internal/auth"
	"scribe/internal/httputil"
)

// Auth resolves the bearer token on every request and stores the caller
// identity in the request context. Public paths pass through untouched.
//
// Verified enforcement happens here too: an authenticated but unverified
// account gets no access to any content route, uniformly rather than
// per-handler.
func Auth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			identity, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			// Unverified accounts may inspect their own account state
			// but get nothing else.
			if !identity.Verified && r.URL.Path != "/api/users/me" {
				httputil.RespondError(w, http.StatusForbidden, "account not verified")
				return
			}

			next.ServeHTTP(w, httputil.WithIdentity(r, *identity))
		})
	}
}

// isPublicPath reports whether a path is reachable without a token.
func isPublicPath(path string) bool {
	if path == "/health" {
		return true
	}
	return strings.HasPrefix(path, "/api/auth/")
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
