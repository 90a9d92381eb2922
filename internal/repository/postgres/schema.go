package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Bootstrap applies the idempotent schema for the configured table prefix.
// Statements use IF NOT EXISTS so repeated startups are safe.
//
// parent_id has no foreign key on purpose: cascade deletion is application
// logic (owner-scoped, transactional), and a DB-level cascade would bypass
// the per-row owner filter.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, tables *TableNames, logger *slog.Logger) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				email TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				is_verified BOOLEAN NOT NULL DEFAULT FALSE,
				verification_token TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Users),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				owner_id UUID NOT NULL,
				parent_id UUID,
				name TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				color TEXT NOT NULL DEFAULT '',
				icon TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Folders),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_owner_parent_idx ON %s (owner_id, parent_id)
		`, tables.Folders, tables.Folders),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				owner_id UUID NOT NULL,
				folder_id UUID NOT NULL,
				title TEXT NOT NULL,
				content TEXT NOT NULL,
				tags JSONB NOT NULL DEFAULT '[]',
				highlights JSONB NOT NULL DEFAULT '[]',
				drawings JSONB NOT NULL DEFAULT '[]',
				category TEXT NOT NULL DEFAULT 'general',
				episode INTEGER,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)
		`, tables.Notes),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_owner_folder_idx ON %s (owner_id, folder_id)
		`, tables.Notes, tables.Notes),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	logger.Info("schema bootstrapped",
		"users", tables.Users,
		"folders", tables.Folders,
		"notes", tables.Notes,
	)

	return nil
}
