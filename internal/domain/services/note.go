package services

import (
	"context"

	"scribe/internal/domain/models"
	"scribe/internal/domain/repositories"
)

// NoteService handles note business logic
type NoteService interface {
	// ListNotes returns one page of the owner's notes, optionally
	// filtered by a case-insensitive substring search
	ListNotes(ctx context.Context, ownerID string, opts repositories.NoteListOptions) (*models.NotePage, error)

	// CreateNote creates a new note
	CreateNote(ctx context.Context, ownerID string, req *CreateNoteRequest) (*models.Note, error)

	// GetNote retrieves a note with its folder's display fields
	GetNote(ctx context.Context, id, ownerID string) (*models.Note, error)

	// UpdateNote updates a note
	UpdateNote(ctx context.Context, id, ownerID string, req *UpdateNoteRequest) (*models.Note, error)

	// DeleteNote deletes a note
	DeleteNote(ctx context.Context, id, ownerID string) error

	// UpdateHighlights replaces a note's highlight list wholesale
	UpdateHighlights(ctx context.Context, id, ownerID string, highlights []models.Highlight) (*models.Note, error)
}

// CreateNoteRequest represents a note creation request
type CreateNoteRequest struct {
	Title    string             `json:"title"`
	Content  string             `json:"content"`
	FolderID string             `json:"folder_id"`
	Tags     []string           `json:"tags,omitempty"`
	Category string             `json:"category,omitempty"`
	Episode  *int               `json:"episode,omitempty"`
	Drawings []models.Drawing   `json:"drawings,omitempty"`
}

// UpdateNoteRequest represents a note update request. Absent fields keep
// their current value.
type UpdateNoteRequest struct {
	Title    *string           `json:"title,omitempty"`
	Content  *string           `json:"content,omitempty"`
	FolderID *string           `json:"folder_id,omitempty"`
	Tags     *[]string         `json:"tags,omitempty"`
	Category *string           `json:"category,omitempty"`
	Episode  *int              `json:"episode,omitempty"`
	Drawings *[]models.Drawing `json:"drawings,omitempty"`
}
