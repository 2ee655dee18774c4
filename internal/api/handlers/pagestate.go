package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mael/portfolio-showcase/internal/listing"
	"github.com/mael/portfolio-showcase/internal/service"
)

// PageStateHandler exposes the transient per-page UI state so a client can
// read, adjust or reset it directly.
type PageStateHandler struct {
	catalog *service.CatalogService
}

func NewPageStateHandler(catalog *service.CatalogService) *PageStateHandler {
	return &PageStateHandler{catalog: catalog}
}

func (h *PageStateHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.States().Get(chi.URLParam(r, "page")))
}

func (h *PageStateHandler) Save(w http.ResponseWriter, r *http.Request) {
	var change listing.StateChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.catalog.States().Save(chi.URLParam(r, "page"), change))
}

func (h *PageStateHandler) Reset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.States().Reset(chi.URLParam(r, "page")))
}
