package handler

import (
	"net/http"

	"scribe/internal/httputil"
)

// Health reports liveness. It deliberately touches nothing downstream.
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
