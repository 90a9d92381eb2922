package handler

import (
	"log/slog"
	"net/http"

	"scribe/internal/domain/services"
	"scribe/internal/httputil"
	"scribe/internal/service"
)

// AssistHandler handles HTTP requests for AI study material generation
type AssistHandler struct {
	assistService services.AssistService
	logger        *slog.Logger
}

// NewAssistHandler creates a new assist handler
func NewAssistHandler(assistService services.AssistService, logger *slog.Logger) *AssistHandler {
	return &AssistHandler{
		assistService: assistService,
		logger:        logger,
	}
}

// Outline generates a Markdown study outline for a topic
// POST /api/assist/outline
func (h *AssistHandler) Outline(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic string `json:"topic"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	outline, err := h.assistService.GenerateOutline(r.Context(), httputil.GetUserID(r), req.Topic)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"outline": outline})
}

// Quiz generates quiz questions from a note's content
// POST /api/assist/quiz
func (h *AssistHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NoteID string `json:"note_id"`
		Count  int    `json:"count"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := service.ValidateID("note_id", req.NoteID); err != nil {
		handleError(w, err)
		return
	}

	questions, err := h.assistService.GenerateQuiz(r.Context(), httputil.GetUserID(r), req.NoteID, req.Count)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}
