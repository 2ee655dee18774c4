package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mael/portfolio-showcase/internal/api/middleware"
	"github.com/mael/portfolio-showcase/internal/domain"
	"github.com/mael/portfolio-showcase/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
	authService    *service.AuthService
}

func NewProjectHandler(projectService *service.ProjectService, authService *service.AuthService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, authService: authService}
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}
	project, err := h.projectService.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var project domain.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.projectService.Create(userID, &project)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}

	var project domain.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	project.ID = id

	updated, err := h.projectService.Update(userID, &project)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete flow: request opens the confirm dialog's intent, confirm executes
// it, cancel drops it.

func (h *ProjectHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}
	if err := h.projectService.RequestDelete(userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"pending": true})
}

func (h *ProjectHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err := h.projectService.ConfirmDelete(userID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *ProjectHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	h.projectService.CancelDelete()
	writeJSON(w, http.StatusOK, map[string]bool{"pending": false})
}

// ToggleFavorite flips the project in the signed-in user's favorites.
func (h *ProjectHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}
	if _, err := h.projectService.Get(id); err != nil {
		writeError(w, err)
		return
	}
	favorite, err := h.authService.ToggleFavorite(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"projectId": id, "isFavorite": favorite})
}

func (h *ProjectHandler) Tags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, emptyToSlice(h.projectService.AllTags()))
}

func (h *ProjectHandler) Modules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, emptyToSlice(h.projectService.AllModules()))
}

func emptyToSlice(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
