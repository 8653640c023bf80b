package knowledge

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers knowledge maintenance routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/knowledge/rebuild", h.Rebuild)
}
