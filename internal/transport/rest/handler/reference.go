package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"mindhealth/internal/service"
)

// ReferenceHandler serves the public reference pages
type ReferenceHandler struct {
	referenceSvc *service.ReferenceService
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(referenceSvc *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceSvc: referenceSvc}
}

// Overview handles GET /v1/overview
func (h *ReferenceHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.referenceSvc.Overview(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// Disorders handles GET /v1/disorders
func (h *ReferenceHandler) Disorders(w http.ResponseWriter, r *http.Request) {
	disorders, err := h.referenceSvc.Disorders(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, disorders)
}

// Disorder handles GET /v1/disorders/{id}
func (h *ReferenceHandler) Disorder(w http.ResponseWriter, r *http.Request) {
	d, err := h.referenceSvc.Disorder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Statistics handles GET /v1/statistics/{id}
func (h *ReferenceHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.referenceSvc.Statistics(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
