package services

import (
	"context"

	"scribe/internal/domain/models"
)

// TreeService assembles a user's flat folder records into a forest
type TreeService interface {
	// GetFolderTree builds and returns the nested folder/note tree for
	// one owner
	GetFolderTree(ctx context.Context, ownerID string) ([]*models.FolderTreeNode, error)
}
