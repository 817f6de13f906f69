package profile

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler serves the read-only reference data to the page renderer.
type Handler struct {
	profile *Profile
}

// NewHandler creates a handler over an already loaded profile.
func NewHandler(p *Profile) *Handler {
	return &Handler{
		profile: p,
	}
}

// RegisterRoutes attaches the profile endpoint to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/profile", h.handleGetProfile)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.profile)
}

// writeJSON is a helper function to send json formatted responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}
