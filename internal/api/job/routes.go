package job

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers job catalog routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/api/jobs", h.List)
}
