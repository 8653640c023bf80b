package chat

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers chat routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/chat", h.Chat)
	r.Get("/api/conversations", h.Conversations)
}
