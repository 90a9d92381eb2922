package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"scribe/internal/auth"
	"scribe/internal/domain"
	"scribe/internal/domain/models"
	"scribe/internal/domain/repositories"
	"scribe/internal/domain/services"
)

const minPasswordLength = 8

type accountService struct {
	userRepo repositories.UserRepository
	issuer   *auth.TokenIssuer
	mailer   services.Mailer
	logger   *slog.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	userRepo repositories.UserRepository,
	issuer *auth.TokenIssuer,
	mailer services.Mailer,
	logger *slog.Logger,
) services.AccountService {
	return &accountService{
		userRepo: userRepo,
		issuer:   issuer,
		mailer:   mailer,
		logger:   logger,
	}
}

// Register creates a new unverified account and dispatches a verification
// message.
func (s *accountService) Register(ctx context.Context, req *services.RegisterRequest) (*models.User, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Email,
			validation.Required.Error("email is required"),
			is.Email),
		validation.Field(&req.Password,
			validation.Required.Error("password is required"),
			validation.Length(minPasswordLength, 0).Error(fmt.Sprintf("must be at least %d characters", minPasswordLength))),
	)
	if err != nil {
		return nil, asValidationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Email:             req.Email,
		PasswordHash:      string(hash),
		IsVerified:        false,
		VerificationToken: uuid.NewString(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Mail delivery must not undo a committed registration. The token is
	// persisted, so a failed send can be retried out of band.
	if err := s.mailer.SendVerification(ctx, user.Email, user.VerificationToken); err != nil {
		s.logger.Warn("verification mail failed", "user_id", user.ID, "error", err)
	}

	s.logger.Info("account registered", "user_id", user.ID)
	return user, nil
}

// Login checks credentials and issues a bearer token. Unknown email and
// wrong password produce the same error.
func (s *accountService) Login(ctx context.Context, req *services.LoginRequest) (*services.LoginResult, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required.Error("email is required")),
		validation.Field(&req.Password, validation.Required.Error("password is required")),
	)
	if err != nil {
		return nil, asValidationError(err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	token, expiresIn, err := s.issuer.IssueToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &services.LoginResult{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      user,
	}, nil
}

// Verify marks the account matching the verification token as verified
func (s *accountService) Verify(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, &domain.ValidationError{
			Message: "validation failed",
			Fields:  map[string]string{"token": "verification token is required"},
		}
	}

	user, err := s.userRepo.MarkVerified(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid verification token", domain.ErrNotFound)
		}
		return nil, err
	}

	s.logger.Info("account verified", "user_id", user.ID)
	return user, nil
}

// GetUser retrieves a user by ID
func (s *accountService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
