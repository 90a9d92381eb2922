package repositories

import (
	"context"

	"scribe/internal/domain/models"
)

// FolderRepository defines data access operations for folders.
//
// Every method takes the owner's user ID and applies it as a mandatory
// equality filter. There is deliberately no way to query a folder without
// naming an owner: a new operation cannot forget the ownership filter.
type FolderRepository interface {
	// Create creates a new folder
	Create(ctx context.Context, folder *models.Folder) error

	// GetByID retrieves a folder owned by ownerID
	GetByID(ctx context.Context, id, ownerID string) (*models.Folder, error)

	// Update updates a folder
	Update(ctx context.Context, folder *models.Folder) error

	// Delete deletes a folder owned by ownerID
	Delete(ctx context.Context, id, ownerID string) error

	// ListChildren lists immediate child folders. A nil folderID lists
	// root-level folders.
	ListChildren(ctx context.Context, folderID *string, ownerID string) ([]models.Folder, error)

	// GetAllByOwner retrieves all folders of one owner (flat list,
	// newest first)
	GetAllByOwner(ctx context.Context, ownerID string) ([]models.Folder, error)
}
