package handler

import (
	"log/slog"
	"net/http"

	"scribe/internal/config"
	"scribe/internal/domain/models"
	"scribe/internal/domain/repositories"
	"scribe/internal/domain/services"
	"scribe/internal/httputil"
	"scribe/internal/service"
)

// NoteHandler handles HTTP requests for note operations
type NoteHandler struct {
	noteService services.NoteService
	logger      *slog.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService services.NoteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		logger:      logger,
	}
}

// List returns one page of the caller's notes
// GET /api/notes?search=&page=&limit=
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := repositories.NoteListOptions{
		Search: r.URL.Query().Get("search"),
		Page:   httputil.QueryInt(r, "page", 1, 1, 1<<30),
		Limit:  httputil.QueryInt(r, "limit", config.DefaultNotePageSize, 1, config.MaxNotePageSize),
	}

	page, err := h.noteService.ListNotes(r.Context(), httputil.GetUserID(r), opts)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}

// Create creates a new note
// POST /api/notes
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateNoteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	note, err := h.noteService.CreateNote(r.Context(), httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, note)
}

// Get returns one note with its folder's display fields
// GET /api/notes/{id}
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := service.ValidateID("note id", id); err != nil {
		handleError(w, err)
		return
	}

	note, err := h.noteService.GetNote(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, note)
}

// Update updates a note
// PATCH /api/notes/{id}
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := service.ValidateID("note id", id); err != nil {
		handleError(w, err)
		return
	}

	var req services.UpdateNoteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	note, err := h.noteService.UpdateNote(r.Context(), id, httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, note)
}

// Delete removes a note
// DELETE /api/notes/{id}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := service.ValidateID("note id", id); err != nil {
		handleError(w, err)
		return
	}

	if err := h.noteService.DeleteNote(r.Context(), id, httputil.GetUserID(r)); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateHighlights replaces a note's highlight list wholesale
// PUT /api/notes/{id}/highlights
func (h *NoteHandler) UpdateHighlights(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := service.ValidateID("note id", id); err != nil {
		handleError(w, err)
		return
	}

	var req struct {
		Highlights []models.Highlight `json:"highlights"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	note, err := h.noteService.UpdateHighlights(r.Context(), id, httputil.GetUserID(r), req.Highlights)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, note)
}
