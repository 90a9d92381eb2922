package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"scribe/internal/config"
	"scribe/internal/domain/models"
	"scribe/internal/domain/repositories"
	"scribe/internal/domain/services"
)

const defaultCategory = "general"

type noteService struct {
	noteRepo   repositories.NoteRepository
	folderRepo repositories.FolderRepository
	logger     *slog.Logger
}

// NewNoteService creates a new note service
func NewNoteService(
	noteRepo repositories.NoteRepository,
	folderRepo repositories.FolderRepository,
	logger *slog.Logger,
) services.NoteService {
	return &noteService{
		noteRepo:   noteRepo,
		folderRepo: folderRepo,
		logger:     logger,
	}
}

// ListNotes returns one page of the owner's notes, optionally filtered by
// a case-insensitive substring search over title and content.
func (s *noteService) ListNotes(ctx context.Context, ownerID string, opts repositories.NoteListOptions) (*models.NotePage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = config.DefaultNotePageSize
	}
	if opts.Limit > config.MaxNotePageSize {
		opts.Limit = config.MaxNotePageSize
	}

	notes, total, err := s.noteRepo.List(ctx, ownerID, opts)
	if err != nil {
		return nil, err
	}

	pages := total / opts.Limit
	if total%opts.Limit != 0 {
		pages++
	}

	return &models.NotePage{
		Notes: notes,
		Pagination: models.Pagination{
			Page:  opts.Page,
			Limit: opts.Limit,
			Total: total,
			Pages: pages,
		},
	}, nil
}

// CreateNote creates a new note
func (s *noteService) CreateNote(ctx context.Context, ownerID string, req *services.CreateNoteRequest) (*models.Note, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	err := validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(1, config.MaxNoteTitleLength)),
		validation.Field(&req.Content,
			validation.Required.Error("content is required"),
			validation.RuneLength(1, config.MaxNoteContentLength)),
		validation.Field(&req.FolderID,
			validation.Required.Error("folder_id is required"),
			is.UUID),
	)
	if err != nil {
		return nil, asValidationError(err)
	}

	// The target folder must exist and belong to the caller.
	if _, err := s.folderRepo.GetByID(ctx, req.FolderID, ownerID); err != nil {
		return nil, fmt.Errorf("folder: %w", err)
	}

	category := req.Category
	if category == "" {
		category = defaultCategory
	}

	now := time.Now().UTC()
	note := &models.Note{
		OwnerID:    ownerID,
		FolderID:   req.FolderID,
		Title:      Sanitize(req.Title),
		Content:    Sanitize(req.Content),
		Tags:       req.Tags,
		Highlights: []models.Highlight{},
		Drawings:   req.Drawings,
		Category:   category,
		Episode:    req.Episode,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	s.logger.Info("note created", "note_id", note.ID, "folder_id", note.FolderID, "owner_id", ownerID)
	return note, nil
}

// GetNote retrieves a note with its folder's display fields
func (s *noteService) GetNote(ctx context.Context, id, ownerID string) (*models.Note, error) {
	return s.noteRepo.GetByID(ctx, id, ownerID)
}

// UpdateNote updates a note. Absent fields keep their current value.
func (s *noteService) UpdateNote(ctx context.Context, id, ownerID string, req *services.UpdateNoteRequest) (*models.Note, error) {
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	if req.Content != nil {
		trimmed := strings.TrimSpace(*req.Content)
		req.Content = &trimmed
	}

	err := validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.RuneLength(1, config.MaxNoteTitleLength)),
		validation.Field(&req.Content,
			validation.NilOrNotEmpty.Error("content cannot be empty"),
			validation.RuneLength(1, config.MaxNoteContentLength)),
		validation.Field(&req.FolderID, is.UUID),
	)
	if err != nil {
		return nil, asValidationError(err)
	}

	note, err := s.noteRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = Sanitize(*req.Title)
	}
	if req.Content != nil {
		note.Content = Sanitize(*req.Content)
	}
	if req.FolderID != nil && *req.FolderID != note.FolderID {
		// Moving to another folder re-runs the ownership check against
		// the destination.
		if _, err := s.folderRepo.GetByID(ctx, *req.FolderID, ownerID); err != nil {
			return nil, fmt.Errorf("folder: %w", err)
		}
		note.FolderID = *req.FolderID
	}
	if req.Tags != nil {
		note.Tags = *req.Tags
	}
	if req.Category != nil && *req.Category != "" {
		note.Category = *req.Category
	}
	if req.Episode != nil {
		note.Episode = req.Episode
	}
	if req.Drawings != nil {
		note.Drawings = *req.Drawings
	}

	note.UpdatedAt = time.Now().UTC()

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// DeleteNote deletes a note
func (s *noteService) DeleteNote(ctx context.Context, id, ownerID string) error {
	return s.noteRepo.Delete(ctx, id, ownerID)
}

// UpdateHighlights replaces a note's highlight list wholesale. Highlights
// are presentation state kept by the client, so positions are stored as
// given rather than checked against the content.
func (s *noteService) UpdateHighlights(ctx context.Context, id, ownerID string, highlights []models.Highlight) (*models.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if highlights == nil {
		highlights = []models.Highlight{}
	}
	note.Highlights = highlights
	note.UpdatedAt = time.Now().UTC()

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}
