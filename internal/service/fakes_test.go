package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"scribe/internal/domain"
	"scribe/internal/domain/models"
	"scribe/internal/domain/repositories"
)

// In-memory repository fakes. They mirror the owner-scoping contract of
// the Postgres implementations: every lookup filters on owner, and a
// cross-owner id reports not found.

type fakeFolderRepo struct {
	folders []models.Folder
}

func (r *fakeFolderRepo) Create(_ context.Context, folder *models.Folder) error {
	if folder.ID == "" {
		folder.ID = uuid.NewString()
	}
	r.folders = append(r.folders, *folder)
	return nil
}

func (r *fakeFolderRepo) GetByID(_ context.Context, id, ownerID string) (*models.Folder, error) {
	for i := range r.folders {
		if r.folders[i].ID == id && r.folders[i].OwnerID == ownerID {
			f := r.folders[i]
			return &f, nil
		}
	}
	return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
}

func (r *fakeFolderRepo) Update(_ context.Context, folder *models.Folder) error {
	for i := range r.folders {
		if r.folders[i].ID == folder.ID && r.folders[i].OwnerID == folder.OwnerID {
			r.folders[i] = *folder
			return nil
		}
	}
	return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
}

func (r *fakeFolderRepo) Delete(_ context.Context, id, ownerID string) error {
	for i := range r.folders {
		if r.folders[i].ID == id && r.folders[i].OwnerID == ownerID {
			r.folders = append(r.folders[:i], r.folders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
}

func (r *fakeFolderRepo) ListChildren(_ context.Context, folderID *string, ownerID string) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.folders {
		if f.OwnerID != ownerID {
			continue
		}
		if folderID == nil {
			if f.ParentID == nil {
				out = append(out, f)
			}
		} else if f.ParentID != nil && *f.ParentID == *folderID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) GetAllByOwner(_ context.Context, ownerID string) ([]models.Folder, error) {
	var out []models.Folder
	for _, f := range r.folders {
		if f.OwnerID == ownerID {
			out = append(out, f)
		}
	}
	return out, nil
}

type fakeNoteRepo struct {
	notes []models.Note
}

func (r *fakeNoteRepo) Create(_ context.Context, note *models.Note) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	r.notes = append(r.notes, *note)
	return nil
}

func (r *fakeNoteRepo) GetByID(_ context.Context, id, ownerID string) (*models.Note, error) {
	for i := range r.notes {
		if r.notes[i].ID == id && r.notes[i].OwnerID == ownerID {
			n := r.notes[i]
			return &n, nil
		}
	}
	return nil, fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
}

func (r *fakeNoteRepo) Update(_ context.Context, note *models.Note) error {
	for i := range r.notes {
		if r.notes[i].ID == note.ID && r.notes[i].OwnerID == note.OwnerID {
			r.notes[i] = *note
			return nil
		}
	}
	return fmt.Errorf("note %s: %w", note.ID, domain.ErrNotFound)
}

func (r *fakeNoteRepo) Delete(_ context.Context, id, ownerID string) error {
	for i := range r.notes {
		if r.notes[i].ID == id && r.notes[i].OwnerID == ownerID {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
}

func (r *fakeNoteRepo) List(_ context.Context, ownerID string, opts repositories.NoteListOptions) ([]models.Note, int, error) {
	var matched []models.Note
	search := strings.ToLower(opts.Search)
	for _, n := range r.notes {
		if n.OwnerID != ownerID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(n.Title), search) &&
			!strings.Contains(strings.ToLower(n.Content), search) {
			continue
		}
		matched = append(matched, n)
	}

	total := len(matched)
	start := (opts.Page - 1) * opts.Limit
	if start > total {
		start = total
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (r *fakeNoteRepo) ListMetaByFolder(_ context.Context, folderID, ownerID string) ([]models.NoteMeta, error) {
	var out []models.NoteMeta
	for _, n := range r.notes {
		if n.OwnerID == ownerID && n.FolderID == folderID {
			out = append(out, noteMeta(n))
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) GetAllMetaByOwner(_ context.Context, ownerID string) ([]models.NoteMeta, error) {
	var out []models.NoteMeta
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			out = append(out, noteMeta(n))
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) DeleteByFolder(_ context.Context, folderID, ownerID string) (int, error) {
	kept := r.notes[:0]
	deleted := 0
	for _, n := range r.notes {
		if n.OwnerID == ownerID && n.FolderID == folderID {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	r.notes = kept
	return deleted, nil
}

func noteMeta(n models.Note) models.NoteMeta {
	return models.NoteMeta{
		ID:        n.ID,
		FolderID:  n.FolderID,
		Title:     n.Title,
		Category:  n.Category,
		Episode:   n.Episode,
		UpdatedAt: n.UpdatedAt,
	}
}

type fakeUserRepo struct {
	users []models.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return &domain.ConflictError{
				Message:      "an account with this email already exists",
				ResourceType: "user",
				ResourceID:   u.ID,
			}
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", domain.ErrNotFound)
}

func (r *fakeUserRepo) MarkVerified(_ context.Context, token string) (*models.User, error) {
	for i := range r.users {
		if token != "" && r.users[i].VerificationToken == token {
			r.users[i].IsVerified = true
			r.users[i].VerificationToken = ""
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("verification token: %w", domain.ErrNotFound)
}

// fakeTxManager runs the function directly; the fakes have no
// transaction semantics to coordinate.
type fakeTxManager struct{}

func (fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}
