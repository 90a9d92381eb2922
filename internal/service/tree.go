package service

import (
	"context"
	"fmt"
	"log/slog"

	"scribe/internal/domain/models"
	"scribe/internal/domain/repositories"
	"scribe/internal/domain/services"
)

type treeService struct {
	folderRepo repositories.FolderRepository
	noteRepo   repositories.NoteRepository
	logger     *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(
	folderRepo repositories.FolderRepository,
	noteRepo repositories.NoteRepository,
	logger *slog.Logger,
) services.TreeService {
	return &treeService{
		folderRepo: folderRepo,
		noteRepo:   noteRepo,
		logger:     logger,
	}
}

// GetFolderTree builds the nested folder/note tree for one owner from
// two flat queries, in memory.
func (s *treeService) GetFolderTree(ctx context.Context, ownerID string) ([]*models.FolderTreeNode, error) {
	folders, err := s.folderRepo.GetAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load folders: %w", err)
	}

	notes, err := s.noteRepo.GetAllMetaByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	return s.buildTree(folders, notes), nil
}

// buildTree assembles a forest in three passes: index every folder as a
// node, link children to parents, then attach notes to their folders.
//
// A folder whose parent id points at a folder that no longer exists is
// dropped rather than promoted to the root, so a half-finished cascade
// delete never resurfaces orphans at the top level. Notes whose folder
// is gone are dropped the same way.
func (s *treeService) buildTree(folders []models.Folder, notes []models.NoteMeta) []*models.FolderTreeNode {
	nodes := make(map[string]*models.FolderTreeNode, len(folders))
	for i := range folders {
		f := &folders[i]
		nodes[f.ID] = &models.FolderTreeNode{
			ID:          f.ID,
			ParentID:    f.ParentID,
			Name:        f.Name,
			Description: f.Description,
			Color:       f.Color,
			Icon:        f.Icon,
			CreatedAt:   f.CreatedAt,
			Folders:     []*models.FolderTreeNode{},
			Notes:       []models.NoteMeta{},
		}
	}

	// Second pass walks the input slice, not the map, so sibling order
	// follows the repository's ordering.
	roots := []*models.FolderTreeNode{}
	for i := range folders {
		node := nodes[folders[i].ID]
		if node.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*node.ParentID]
		if !ok {
			s.logger.Debug("dropping folder with missing parent",
				"folder_id", node.ID,
				"parent_id", *node.ParentID)
			continue
		}
		parent.Folders = append(parent.Folders, node)
	}

	for _, note := range notes {
		folder, ok := nodes[note.FolderID]
		if !ok {
			continue
		}
		folder.Notes = append(folder.Notes, note)
	}

	return roots
}
