package handler

import (
	"net/http"

	"mindhealth/internal/service"
	"mindhealth/internal/transport/rest/middleware"
)

// StatusHandler serves the status dashboard
type StatusHandler struct {
	statusSvc *service.StatusService
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(statusSvc *service.StatusService) *StatusHandler {
	return &StatusHandler{statusSvc: statusSvc}
}

// Get handles GET /v1/status
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	dashboard, err := h.statusSvc.Dashboard(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
