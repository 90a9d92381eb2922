package handler

import (
	"log/slog"
	"net/http"

	"scribe/internal/domain/services"
	"scribe/internal/httputil"
)

// AccountHandler handles HTTP requests for registration, login and
// verification
type AccountHandler struct {
	accountService services.AccountService
	logger         *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.accountService.Register(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, user)
}

// Login checks credentials and returns a bearer token
// POST /api/auth/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.accountService.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// Verify marks the account matching the token as verified
// POST /api/auth/verify
func (h *AccountHandler) Verify(w http.ResponseWriter, r *http.Request) {
	// The token arrives as a query parameter when the mail link is
	// followed directly, or in the body when posted by a client.
	req := struct {
		Token string `json:"token"`
	}{Token: r.URL.Query().Get("token")}
	if req.Token == "" {
		if err := httputil.ParseJSON(w, r, &req); err != nil {
			httputil.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	user, err := h.accountService.Verify(r.Context(), req.Token)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}

// Me returns the authenticated caller's account
// GET /api/users/me
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	user, err := h.accountService.GetUser(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, user)
}
