package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	chatapi "github.com/seniorworks/chatbot-backend/internal/api/chat"
	jobapi "github.com/seniorworks/chatbot-backend/internal/api/job"
	knowledgeapi "github.com/seniorworks/chatbot-backend/internal/api/knowledge"
	"github.com/seniorworks/chatbot-backend/internal/api/middleware"
	"github.com/seniorworks/chatbot-backend/internal/pkg/response"
	"go.uber.org/zap"
)

const version = "1.0.0"

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	chatHandler *chatapi.Handler,
	jobHandler *jobapi.Handler,
	knowledgeHandler *knowledgeapi.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS)                         // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   version,
		})
	})

	// Register routes
	chatapi.RegisterRoutes(r, chatHandler)
	jobapi.RegisterRoutes(r, jobHandler)
	knowledgeapi.RegisterRoutes(r, knowledgeHandler)

	return r
}
