package services

import (
	"context"

	"scribe/internal/domain/models"
)

// AccountService handles registration, login and email verification
type AccountService interface {
	// Register creates a new unverified account and dispatches a
	// verification message
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)

	// Login checks credentials and issues a bearer token
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)

	// Verify marks the account matching the verification token as
	// verified
	Verify(ctx context.Context, token string) (*models.User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id string) (*models.User, error)
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the issued bearer token and its lifetime in seconds
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      *models.User `json:"user"`
}

// Mailer delivers account mail. Delivery is an external concern; the
// default implementation only logs.
type Mailer interface {
	SendVerification(ctx context.Context, email, token string) error
}
