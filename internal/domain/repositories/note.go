package repositories

import (
	"context"

	"scribe/internal/domain/models"
)

// NoteListOptions controls note listing: optional case-insensitive
// substring search over title and content, plus pagination.
type NoteListOptions struct {
	Search string
	Page   int
	Limit  int
}

// NoteRepository defines data access operations for notes. As with
// folders, every query is owner-scoped by construction.
type NoteRepository interface {
	// Create creates a new note
	Create(ctx context.Context, note *models.Note) error

	// GetByID retrieves a note owned by ownerID, with its folder's
	// display fields joined in
	GetByID(ctx context.Context, id, ownerID string) (*models.Note, error)

	// Update updates a note
	Update(ctx context.Context, note *models.Note) error

	// Delete deletes a note owned by ownerID
	Delete(ctx context.Context, id, ownerID string) error

	// List returns one page of notes plus the total match count
	List(ctx context.Context, ownerID string, opts NoteListOptions) ([]models.Note, int, error)

	// ListMetaByFolder lists note metadata inside one folder, ordered by
	// episode ascending (NULLs last) then created_at descending
	ListMetaByFolder(ctx context.Context, folderID, ownerID string) ([]models.NoteMeta, error)

	// GetAllMetaByOwner retrieves metadata for every note of one owner
	GetAllMetaByOwner(ctx context.Context, ownerID string) ([]models.NoteMeta, error)

	// DeleteByFolder deletes every note directly inside a folder,
	// returning the number removed
	DeleteByFolder(ctx context.Context, folderID, ownerID string) (int, error)
}
