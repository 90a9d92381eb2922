package services

import (
	"context"

	"scribe/internal/domain/models"
	"scribe/internal/httputil"
)

// FolderService handles folder business logic
type FolderService interface {
	// ListFolders lists all folders of one owner (flat, newest first)
	ListFolders(ctx context.Context, ownerID string) ([]models.Folder, error)

	// CreateFolder creates a new folder
	CreateFolder(ctx context.Context, ownerID string, req *CreateFolderRequest) (*models.Folder, error)

	// GetFolderDetail retrieves a folder with its notes and immediate
	// child folders
	GetFolderDetail(ctx context.Context, id, ownerID string) (*models.FolderDetail, error)

	// UpdateFolder updates a folder (rename, restyle or move)
	UpdateFolder(ctx context.Context, id, ownerID string, req *UpdateFolderRequest) (*models.Folder, error)

	// DeleteFolder deletes a folder and everything beneath it
	DeleteFolder(ctx context.Context, id, ownerID string) error
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Color       string  `json:"color,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"` // null for root folders
}

// UpdateFolderRequest represents a folder update request. ParentID uses
// tri-state semantics: absent = keep, null = move to root, value = move.
type UpdateFolderRequest struct {
	Name        *string                 `json:"name,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Color       *string                 `json:"color,omitempty"`
	Icon        *string                 `json:"icon,omitempty"`
	ParentID    httputil.OptionalString `json:"parent_id"`
}
