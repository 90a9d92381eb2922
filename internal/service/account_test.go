package service

import (
	"context"
	"errors"
	"testing"

	"scribe/internal/auth"
	"scribe/internal/domain"
	"scribe/internal/domain/services"
)

type recordingMailer struct {
	emails []string
	tokens []string
}

func (m *recordingMailer) SendVerification(_ context.Context, email, token string) error {
	m.emails = append(m.emails, email)
	m.tokens = append(m.tokens, token)
	return nil
}

func newAccountFixture(t *testing.T) (services.AccountService, *fakeUserRepo, *recordingMailer) {
	t.Helper()
	issuer, err := auth.NewTokenIssuer(auth.TokenIssuerConfig{
		SigningSecret: []byte("test-secret"),
		Issuer:        "scribe-test",
	})
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	userRepo := &fakeUserRepo{}
	mailer := &recordingMailer{}
	return NewAccountService(userRepo, issuer, mailer, testLogger()), userRepo, mailer
}

func TestRegisterCreatesUnverifiedAccount(t *testing.T) {
	svc, _, mailer := newAccountFixture(t)

	user, err := svc.Register(context.Background(), &services.RegisterRequest{
		Email:    "student@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.IsVerified {
		t.Error("new accounts must start unverified")
	}
	if user.PasswordHash == "" || user.PasswordHash == "correct horse" {
		t.Error("password must be stored hashed")
	}
	if len(mailer.tokens) != 1 || mailer.tokens[0] != user.VerificationToken {
		t.Errorf("verification mail not dispatched with the stored token")
	}
}

func TestRegisterValidatesEmailAndPassword(t *testing.T) {
	svc, _, _ := newAccountFixture(t)

	_, err := svc.Register(context.Background(), &services.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
	})

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"email", "password"} {
		if _, ok := validationErr.Fields[field]; !ok {
			t.Errorf("expected violation for %q, got %v", field, validationErr.Fields)
		}
	}
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, _, _ := newAccountFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &services.RegisterRequest{
		Email:    "student@example.com",
		Password: "correct horse",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, wrongPass := svc.Login(ctx, &services.LoginRequest{Email: "student@example.com", Password: "wrong"})
	_, unknown := svc.Login(ctx, &services.LoginRequest{Email: "nobody@example.com", Password: "whatever"})

	if !errors.Is(wrongPass, domain.ErrUnauthorized) {
		t.Errorf("wrong password: expected unauthorized, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrUnauthorized) {
		t.Errorf("unknown email: expected unauthorized, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Errorf("credential failures must be indistinguishable: %q vs %q", wrongPass, unknown)
	}
}

func TestVerifyFlowEndToEnd(t *testing.T) {
	svc, _, mailer := newAccountFixture(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &services.RegisterRequest{
		Email:    "student@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	verified, err := svc.Verify(ctx, mailer.tokens[0])
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !verified.IsVerified || verified.ID != registered.ID {
		t.Errorf("unexpected verify result: %+v", verified)
	}

	// The token is single-use.
	if _, err := svc.Verify(ctx, mailer.tokens[0]); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("reused token: expected not found, got %v", err)
	}

	// Login reflects the verified flag in the issued token's claims.
	result, err := svc.Login(ctx, &services.LoginRequest{Email: "student@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Token == "" || result.ExpiresIn <= 0 {
		t.Errorf("unexpected login result: %+v", result)
	}
	if !result.User.IsVerified {
		t.Error("login result should carry the verified account state")
	}
}

func TestVerifyRejectsUnknownToken(t *testing.T) {
	svc, _, _ := newAccountFixture(t)

	if _, err := svc.Verify(context.Background(), "bogus"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
