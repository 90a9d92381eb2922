package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"scribe/internal/domain"
	"scribe/internal/domain/models"
	"scribe/internal/httputil"
)

type stubVerifier struct {
	identities map[string]models.Identity
}

func (v *stubVerifier) VerifyToken(token string) (*models.Identity, error) {
	if id, ok := v.identities[token]; ok {
		return &id, nil
	}
	return nil, domain.ErrUnauthorized
}

func (v *stubVerifier) Close() error { return nil }

func newAuthFixture() http.Handler {
	verifier := &stubVerifier{identities: map[string]models.Identity{
		"good-token":       {UserID: "user-1", Verified: true},
		"unverified-token": {UserID: "user-2", Verified: false},
	}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-User", httputil.GetUserID(r))
		w.WriteHeader(http.StatusOK)
	})
	return Auth(verifier)(next)
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
		wantUser   string
	}{
		{"public health path", "/health", "", http.StatusOK, ""},
		{"public auth path", "/api/auth/login", "", http.StatusOK, ""},
		{"missing token", "/api/folders", "", http.StatusUnauthorized, ""},
		{"malformed header", "/api/folders", "Token abc", http.StatusUnauthorized, ""},
		{"unknown token", "/api/folders", "Bearer bogus", http.StatusUnauthorized, ""},
		{"valid token", "/api/folders", "Bearer good-token", http.StatusOK, "user-1"},
		{"case-insensitive scheme", "/api/folders", "bearer good-token", http.StatusOK, "user-1"},
		{"unverified account blocked", "/api/folders", "Bearer unverified-token", http.StatusForbidden, ""},
		{"unverified account may read itself", "/api/users/me", "Bearer unverified-token", http.StatusOK, "user-2"},
	}

	handler := newAuthFixture()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantUser != "" && rec.Header().Get("X-User") != tt.wantUser {
				t.Errorf("user = %q, want %q", rec.Header().Get("X-User"), tt.wantUser)
			}
		})
	}
}
