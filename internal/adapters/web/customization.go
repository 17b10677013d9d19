package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// apiBundle handles GET /api/customization.
func (h *Handler) apiBundle(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetBundle(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}

// apiConfig handles GET /api/customization/config.
func (h *Handler) apiConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.GetConfig(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, cfg)
}

// apiTabs handles GET /api/customization/tabs.
func (h *Handler) apiTabs(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListTabs(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}

// apiSchema handles GET /api/customization/schema.
func (h *Handler) apiSchema(w http.ResponseWriter, r *http.Request) {
	schema, err := h.svc.ConfigSchema(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, schema)
}

// apiChart handles GET /api/customization/charts/{section}/{name}.
func (h *Handler) apiChart(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetChart(r.Context(), chi.URLParam(r, "section"), chi.URLParam(r, "name"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}

// apiReferenceList handles GET /api/customization/data/{name}.
func (h *Handler) apiReferenceList(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetReferenceList(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, result)
}
