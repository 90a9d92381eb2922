package handler

import (
	"log/slog"
	"net/http"

	"scribe/internal/domain/services"
	"scribe/internal/httputil"
	"scribe/internal/service"
)

// FolderHandler handles HTTP requests for folder operations
type FolderHandler struct {
	folderService services.FolderService
	treeService   services.TreeService
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(
	folderService services.FolderService,
	treeService services.TreeService,
	logger *slog.Logger,
) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		treeService:   treeService,
		logger:        logger,
	}
}

// List returns all of the caller's folders, flat
// GET /api/folders
func (h *FolderHandler) List(w http.ResponseWriter, r *http.Request) {
	folders, err := h.folderService.ListFolders(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folders)
}

// Tree returns the caller's folders and notes as a nested forest
// GET /api/folders/tree
func (h *FolderHandler) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.treeService.GetFolderTree(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}

// Create creates a new folder
// POST /api/folders
func (h *FolderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.folderService.CreateFolder(r.Context(), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// Get returns one folder with its notes and immediate children
// GET /api/folders/{id}
func (h *FolderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := service.ValidateID("folder id", id); err != nil {
		handleError(w, err)
		return
	}

	detail, err := h.folderService.GetFolderDetail(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, detail)
}

// Update renames, restyles or moves a folder
// PATCH /api/folders/{id}
func (h *FolderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := service.ValidateID("folder id", id); err != nil {
		handleError(w, err)
		return
	}

	var req services.UpdateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.folderService.UpdateFolder(r.Context(), id, httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// Delete removes a folder and everything beneath it
// DELETE /api/folders/{id}
func (h *FolderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := service.ValidateID("folder id", id); err != nil {
		handleError(w, err)
		return
	}

	if err := h.folderService.DeleteFolder(r.Context(), id, httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
