package repositories

import (
	"context"

	"scribe/internal/domain/models"
)

// UserRepository defines data access operations for user accounts.
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// MarkVerified flips a user to verified when the token matches,
	// clearing the token
	MarkVerified(ctx context.Context, token string) (*models.User, error)
}
