package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"scribe/internal/domain"
	"scribe/internal/domain/models"
	"scribe/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new user
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (email, password_hash, is_verified, verification_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Users)

	err := GetExecutor(ctx, r.pool).QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.IsVerified,
		user.VerificationToken,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if isPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("an account for %q already exists", user.Email),
				ResourceType: "user",
			}
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, password_hash, is_verified, verification_token, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Users)

	return r.scanUser(GetExecutor(ctx, r.pool).QueryRow(ctx, query, id), id)
}

// GetByEmail retrieves a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, email, password_hash, is_verified, verification_token, created_at, updated_at
		FROM %s
		WHERE email = $1
	`, r.tables.Users)

	return r.scanUser(GetExecutor(ctx, r.pool).QueryRow(ctx, query, email), email)
}

// MarkVerified flips the user matching the verification token to verified
// and clears the token.
func (r *PostgresUserRepository) MarkVerified(ctx context.Context, token string) (*models.User, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET is_verified = TRUE, verification_token = '', updated_at = now()
		WHERE verification_token = $1 AND verification_token <> ''
		RETURNING id, email, password_hash, is_verified, verification_token, created_at, updated_at
	`, r.tables.Users)

	return r.scanUser(GetExecutor(ctx, r.pool).QueryRow(ctx, query, token), "verification token")
}

func (r *PostgresUserRepository) scanUser(row interface{ Scan(dest ...any) error }, ref string) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsVerified,
		&user.VerificationToken,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("user %s: %w", ref, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}
