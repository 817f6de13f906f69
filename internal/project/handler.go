package project

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler is the HTTP API layer for the project catalogue.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler is the constructor for the Handler.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

// RegisterRoutes attaches the catalogue endpoints to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/projects", h.handleListProjects)
	r.Get("/api/projects/{projectID}", h.handleGetProject)
	r.Get("/api/categories", h.handleListCategories)
}

// handleListProjects returns the catalogue, optionally filtered by ?category=slug.
func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.ListProjects(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.logger.Error("list projects failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not retrieve projects")
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// handleGetProject returns a single project by id.
func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	p, err := h.service.GetProject(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
			return
		}
		h.logger.Error("get project failed", zap.Stringer("project_id", projectID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not retrieve project")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("list categories failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not retrieve categories")
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// writeJSON is a helper function to send json formatted responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper function to send a standardized json error message
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
