package auth

import (
	"errors"
	"testing"
	"time"

	"scribe/internal/domain"
	"scribe/internal/domain/models"
)

func newTestIssuer(t *testing.T, clock func() time.Time) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(TokenIssuerConfig{
		SigningSecret: []byte("test-secret"),
		Issuer:        "scribe-test",
		TokenTTL:      time.Hour,
		Clock:         clock,
	})
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}
	return issuer
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	issuer := newTestIssuer(t, nil)

	user := &models.User{ID: "user-1", Email: "student@example.com", IsVerified: true}
	token, expiresIn, err := issuer.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	identity, err := issuer.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if identity.UserID != "user-1" || !identity.Verified {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

func TestVerifyTokenCarriesUnverifiedFlag(t *testing.T) {
	issuer := newTestIssuer(t, nil)

	token, _, err := issuer.IssueToken(&models.User{ID: "user-1", Email: "e@example.com"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	identity, err := issuer.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if identity.Verified {
		t.Error("unverified account must yield Verified=false")
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	now := time.Now()
	issuer := newTestIssuer(t, func() time.Time { return now })

	token, _, err := issuer.IssueToken(&models.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	// Jump past the TTL.
	now = now.Add(2 * time.Hour)
	if _, err := issuer.VerifyToken(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for expired token, got %v", err)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	issuer := newTestIssuer(t, nil)
	other, err := NewTokenIssuer(TokenIssuerConfig{SigningSecret: []byte("different-secret")})
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	token, _, err := other.IssueToken(&models.User{ID: "user-1"})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := issuer.VerifyToken(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for wrong signature, got %v", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	issuer := newTestIssuer(t, nil)

	if _, err := issuer.VerifyToken("not.a.jwt"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestNewTokenIssuerRequiresSecret(t *testing.T) {
	if _, err := NewTokenIssuer(TokenIssuerConfig{}); err == nil {
		t.Fatal("expected error for missing signing secret")
	}
}
