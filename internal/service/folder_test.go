package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"scribe/internal/domain"
	"scribe/internal/domain/models"
	"scribe/internal/domain/services"
	"scribe/internal/httputil"
)

func optionalString(v *string) httputil.OptionalString {
	return httputil.OptionalString{Present: true, Value: v}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFolderFixture() (services.FolderService, *fakeFolderRepo, *fakeNoteRepo) {
	folderRepo := &fakeFolderRepo{}
	noteRepo := &fakeNoteRepo{}
	svc := NewFolderService(folderRepo, noteRepo, fakeTxManager{}, testLogger())
	return svc, folderRepo, noteRepo
}

func mustCreateFolder(t *testing.T, svc services.FolderService, ownerID, name string, parentID *string) *models.Folder {
	t.Helper()
	folder, err := svc.CreateFolder(context.Background(), ownerID, &services.CreateFolderRequest{
		Name:     name,
		ParentID: parentID,
	})
	if err != nil {
		t.Fatalf("CreateFolder(%s): %v", name, err)
	}
	return folder
}

func TestCreateFolderCollectsAllValidationErrors(t *testing.T) {
	svc, _, _ := newFolderFixture()

	_, err := svc.CreateFolder(context.Background(), "owner-1", &services.CreateFolderRequest{
		Name:        "   ",
		Description: strings.Repeat("d", 501),
		Color:       "red",
		Icon:        strings.Repeat("x", 11),
	})

	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"name", "description", "color", "icon"} {
		if _, ok := validationErr.Fields[field]; !ok {
			t.Errorf("expected violation for %q, got %v", field, validationErr.Fields)
		}
	}
}

func TestCreateFolderSanitizesNameAndDescription(t *testing.T) {
	svc, _, _ := newFolderFixture()

	folder, err := svc.CreateFolder(context.Background(), "owner-1", &services.CreateFolderRequest{
		Name:        `Biology<script>alert(1)</script>`,
		Description: `click <a onclick="x()">here</a>`,
	})
	if err != nil {
		t.Fatalf("CreateFolder: %v", err)
	}

	if folder.Name != "Biology" {
		t.Errorf("name = %q, want %q", folder.Name, "Biology")
	}
	if folder.Description != "click <a>here</a>" {
		t.Errorf("description = %q, want %q", folder.Description, "click <a>here</a>")
	}
}

func TestCreateFolderParentMustBeOwned(t *testing.T) {
	svc, _, _ := newFolderFixture()

	other := mustCreateFolder(t, svc, "owner-2", "theirs", nil)

	// Someone else's folder as parent is indistinguishable from a
	// missing one.
	_, err := svc.CreateFolder(context.Background(), "owner-1", &services.CreateFolderRequest{
		Name:     "child",
		ParentID: &other.ID,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for cross-owner parent, got %v", err)
	}
}

func TestUpdateFolderRejectsCycles(t *testing.T) {
	svc, _, _ := newFolderFixture()
	ctx := context.Background()
	const owner = "owner-1"

	root := mustCreateFolder(t, svc, owner, "root", nil)
	child := mustCreateFolder(t, svc, owner, "child", &root.ID)
	grandchild := mustCreateFolder(t, svc, owner, "grandchild", &child.ID)

	tests := []struct {
		name      string
		folderID  string
		newParent string
	}{
		{"own parent", root.ID, root.ID},
		{"direct child", root.ID, child.ID},
		{"deep descendant", root.ID, grandchild.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := tt.newParent
			_, err := svc.UpdateFolder(ctx, tt.folderID, owner, &services.UpdateFolderRequest{
				ParentID: optionalString(&parent),
			})
			var validationErr *domain.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpdateFolderMoveToRoot(t *testing.T) {
	svc, _, _ := newFolderFixture()
	const owner = "owner-1"

	root := mustCreateFolder(t, svc, owner, "root", nil)
	child := mustCreateFolder(t, svc, owner, "child", &root.ID)

	updated, err := svc.UpdateFolder(context.Background(), child.ID, owner, &services.UpdateFolderRequest{
		ParentID: optionalString(nil),
	})
	if err != nil {
		t.Fatalf("UpdateFolder: %v", err)
	}
	if updated.ParentID != nil {
		t.Errorf("expected nil parent after move to root, got %v", *updated.ParentID)
	}
}

func TestDeleteFolderCascadeIsExhaustive(t *testing.T) {
	svc, folderRepo, noteRepo := newFolderFixture()
	ctx := context.Background()
	const owner = "owner-1"

	// root -> (a, b), a -> (aa), with notes at every level.
	root := mustCreateFolder(t, svc, owner, "root", nil)
	a := mustCreateFolder(t, svc, owner, "a", &root.ID)
	b := mustCreateFolder(t, svc, owner, "b", &root.ID)
	aa := mustCreateFolder(t, svc, owner, "aa", &a.ID)
	unrelated := mustCreateFolder(t, svc, owner, "unrelated", nil)

	for _, folderID := range []string{root.ID, a.ID, b.ID, aa.ID} {
		noteRepo.Create(ctx, &models.Note{OwnerID: owner, FolderID: folderID, Title: "n", Content: "c"})
	}
	noteRepo.Create(ctx, &models.Note{OwnerID: owner, FolderID: unrelated.ID, Title: "keep", Content: "c"})

	if err := svc.DeleteFolder(ctx, root.ID, owner); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	for _, folderID := range []string{root.ID, a.ID, b.ID, aa.ID} {
		if _, err := folderRepo.GetByID(ctx, folderID, owner); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("folder %s survived the cascade", folderID)
		}
	}
	metas, _ := noteRepo.GetAllMetaByOwner(ctx, owner)
	if len(metas) != 1 || metas[0].FolderID != unrelated.ID {
		t.Errorf("expected only the unrelated note to survive, got %v", metas)
	}
	if _, err := folderRepo.GetByID(ctx, unrelated.ID, owner); err != nil {
		t.Errorf("unrelated folder should survive: %v", err)
	}
}

func TestDeleteFolderIsOwnerScoped(t *testing.T) {
	svc, folderRepo, noteRepo := newFolderFixture()
	ctx := context.Background()

	mine := mustCreateFolder(t, svc, "owner-1", "mine", nil)
	theirs := mustCreateFolder(t, svc, "owner-2", "theirs", nil)
	noteRepo.Create(ctx, &models.Note{OwnerID: "owner-2", FolderID: theirs.ID, Title: "t", Content: "c"})

	// Deleting someone else's folder reports not found, not forbidden.
	if err := svc.DeleteFolder(ctx, theirs.ID, "owner-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for cross-owner delete, got %v", err)
	}

	if err := svc.DeleteFolder(ctx, mine.ID, "owner-1"); err != nil {
		t.Fatalf("DeleteFolder: %v", err)
	}

	if _, err := folderRepo.GetByID(ctx, theirs.ID, "owner-2"); err != nil {
		t.Errorf("other owner's folder should survive: %v", err)
	}
	metas, _ := noteRepo.GetAllMetaByOwner(ctx, "owner-2")
	if len(metas) != 1 {
		t.Errorf("other owner's note should survive, got %v", metas)
	}
}

func TestDeleteFolderTwiceReportsNotFound(t *testing.T) {
	svc, _, _ := newFolderFixture()
	ctx := context.Background()
	const owner = "owner-1"

	folder := mustCreateFolder(t, svc, owner, "once", nil)

	if err := svc.DeleteFolder(ctx, folder.ID, owner); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.DeleteFolder(ctx, folder.ID, owner); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}

func TestGetFolderDetailCrossOwnerReportsNotFound(t *testing.T) {
	svc, _, _ := newFolderFixture()

	folder := mustCreateFolder(t, svc, "owner-1", "private", nil)

	_, err := svc.GetFolderDetail(context.Background(), folder.ID, "owner-2")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
