package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"scribe/internal/config"
	"scribe/internal/domain"
	"scribe/internal/domain/models"
	"scribe/internal/domain/repositories"
	"scribe/internal/domain/services"
)

type folderService struct {
	folderRepo repositories.FolderRepository
	noteRepo   repositories.NoteRepository
	txManager  repositories.TransactionManager
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	noteRepo repositories.NoteRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		noteRepo:   noteRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// ListFolders lists all folders of one owner, flat, newest first
func (s *folderService) ListFolders(ctx context.Context, ownerID string) ([]models.Folder, error) {
	return s.folderRepo.GetAllByOwner(ctx, ownerID)
}

// CreateFolder creates a new folder
func (s *folderService) CreateFolder(ctx context.Context, ownerID string, req *services.CreateFolderRequest) (*models.Folder, error) {
	req.Name = strings.TrimSpace(req.Name)

	// Normalize empty string to nil for root-level folders
	if req.ParentID != nil && *req.ParentID == "" {
		req.ParentID = nil
	}

	err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, config.MaxFolderNameLength)),
		validation.Field(&req.Description,
			validation.RuneLength(0, config.MaxFolderDescriptionLength)),
		validation.Field(&req.Color,
			validation.Match(hexColorRe).Error("must be a hex color like #RRGGBB")),
		validation.Field(&req.Icon,
			validation.RuneLength(0, config.MaxFolderIconLength)),
		validation.Field(&req.ParentID, is.UUID),
	)
	if err != nil {
		return nil, asValidationError(err)
	}

	// The parent must exist and belong to the same owner. A parent owned
	// by someone else looks identical to a missing one.
	if req.ParentID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.ParentID, ownerID); err != nil {
			return nil, fmt.Errorf("parent folder: %w", err)
		}
	}

	now := time.Now().UTC()
	folder := &models.Folder{
		OwnerID:     ownerID,
		ParentID:    req.ParentID,
		Name:        Sanitize(req.Name),
		Description: Sanitize(req.Description),
		Color:       req.Color,
		Icon:        req.Icon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created", "folder_id", folder.ID, "owner_id", ownerID)
	return folder, nil
}

// GetFolderDetail retrieves a folder with its notes and immediate child
// folders
func (s *folderService) GetFolderDetail(ctx context.Context, id, ownerID string) (*models.FolderDetail, error) {
	folder, err := s.folderRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	notes, err := s.noteRepo.ListMetaByFolder(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder notes: %w", err)
	}

	children, err := s.folderRepo.ListChildren(ctx, &id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list child folders: %w", err)
	}

	return &models.FolderDetail{
		Folder:   folder,
		Notes:    notes,
		Children: children,
	}, nil
}

// UpdateFolder updates a folder (rename, restyle or move)
func (s *folderService) UpdateFolder(ctx context.Context, id, ownerID string, req *services.UpdateFolderRequest) (*models.Folder, error) {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}

	err := validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.NilOrNotEmpty.Error("name cannot be empty"),
			validation.RuneLength(1, config.MaxFolderNameLength)),
		validation.Field(&req.Description,
			validation.RuneLength(0, config.MaxFolderDescriptionLength)),
		validation.Field(&req.Color,
			validation.Match(hexColorRe).Error("must be a hex color like #RRGGBB")),
		validation.Field(&req.Icon,
			validation.RuneLength(0, config.MaxFolderIconLength)),
	)
	if err != nil {
		return nil, asValidationError(err)
	}

	folder, err := s.folderRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		folder.Name = Sanitize(*req.Name)
	}
	if req.Description != nil {
		folder.Description = Sanitize(*req.Description)
	}
	if req.Color != nil {
		folder.Color = *req.Color
	}
	if req.Icon != nil {
		folder.Icon = *req.Icon
	}

	// Tri-state parent: absent keeps the current parent, explicit null
	// moves to the root, a value re-parents under that folder.
	if req.ParentID.Present {
		newParent := req.ParentID.Value
		if newParent != nil && *newParent == "" {
			newParent = nil
		}
		if newParent != nil {
			if err := s.validateMove(ctx, id, *newParent, ownerID); err != nil {
				return nil, err
			}
		}
		folder.ParentID = newParent
	}

	folder.UpdatedAt = time.Now().UTC()

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

// validateMove rejects re-parenting a folder under itself or any of its
// descendants, which would detach the subtree from the forest.
func (s *folderService) validateMove(ctx context.Context, folderID, newParentID, ownerID string) error {
	if newParentID == folderID {
		return &domain.ValidationError{
			Message: "validation failed",
			Fields:  map[string]string{"parent_id": "folder cannot be its own parent"},
		}
	}

	if _, err := s.folderRepo.GetByID(ctx, newParentID, ownerID); err != nil {
		return fmt.Errorf("parent folder: %w", err)
	}

	// Walk up from the candidate parent. Hitting the moving folder means
	// the move would create a cycle. The visited set guards against
	// pre-existing corruption in the parent chain.
	visited := make(map[string]bool)
	current := newParentID
	for depth := 0; depth < config.MaxFolderDepth; depth++ {
		if visited[current] {
			return fmt.Errorf("%w: folder hierarchy contains a cycle", domain.ErrConflict)
		}
		visited[current] = true

		ancestor, err := s.folderRepo.GetByID(ctx, current, ownerID)
		if err != nil {
			return fmt.Errorf("resolve ancestor chain: %w", err)
		}
		if ancestor.ParentID == nil {
			return nil
		}
		if *ancestor.ParentID == folderID {
			return &domain.ValidationError{
				Message: "validation failed",
				Fields:  map[string]string{"parent_id": "cannot move a folder into its own subtree"},
			}
		}
		current = *ancestor.ParentID
	}

	return fmt.Errorf("%w: folder tree exceeds maximum depth %d", domain.ErrConflict, config.MaxFolderDepth)
}

// DeleteFolder deletes a folder and everything beneath it: child folders
// recursively, and the notes in each. The whole cascade runs in one
// transaction so a mid-walk failure leaves the tree untouched.
func (s *folderService) DeleteFolder(ctx context.Context, id, ownerID string) error {
	// Scoped existence check first: a missing folder and someone else's
	// folder both report not found, and both are no-ops.
	if _, err := s.folderRepo.GetByID(ctx, id, ownerID); err != nil {
		return err
	}

	return s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		deleted, err := s.deleteSubtree(txCtx, id, ownerID, 0)
		if err != nil {
			return err
		}
		s.logger.Info("folder cascade delete",
			"folder_id", id,
			"owner_id", ownerID,
			"folders_deleted", deleted)
		return nil
	})
}

// deleteSubtree removes one folder, its notes and its entire descendant
// tree, depth-first. Returns the number of folders removed.
func (s *folderService) deleteSubtree(ctx context.Context, folderID, ownerID string, depth int) (int, error) {
	if depth >= config.MaxFolderDepth {
		return 0, fmt.Errorf("%w: folder tree exceeds maximum depth %d", domain.ErrConflict, config.MaxFolderDepth)
	}

	children, err := s.folderRepo.ListChildren(ctx, &folderID, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to list children of folder %s: %w", folderID, err)
	}

	deleted := 0
	for _, child := range children {
		n, err := s.deleteSubtree(ctx, child.ID, ownerID, depth+1)
		if err != nil {
			return deleted, err
		}
		deleted += n
	}

	if _, err := s.noteRepo.DeleteByFolder(ctx, folderID, ownerID); err != nil {
		return deleted, fmt.Errorf("failed to delete notes of folder %s: %w", folderID, err)
	}

	// A concurrent cascade over an overlapping subtree may have removed
	// this folder already. Both deletes converge on the same end state,
	// so vanishing mid-walk is not an error.
	if err := s.folderRepo.Delete(ctx, folderID, ownerID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return deleted, err
	}

	return deleted + 1, nil
}
