package knowledge

import (
	"context"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/seniorworks/chatbot-backend/internal/entity"
	"github.com/seniorworks/chatbot-backend/internal/pkg/logger"
	"github.com/seniorworks/chatbot-backend/internal/pkg/response"
	"go.uber.org/zap"
)

type KnowledgeUsecase interface {
	Rebuild(ctx context.Context) (*entity.RebuildResult, error)
}

type Handler struct {
	usecase KnowledgeUsecase
}

func NewHandler(usecase KnowledgeUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// Rebuild handles POST /api/knowledge/rebuild - whole-corpus reindex
func (h *Handler) Rebuild(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RebuildKnowledge")

	result, err := h.usecase.Rebuild(ctx)
	if err != nil {
		ctxzap.Error(ctx, "knowledge rebuild failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to rebuild knowledge index")
		return
	}

	ctxzap.Info(ctx, "knowledge rebuild completed",
		zap.Int("documents", result.Documents),
		zap.Int("indexed", result.Indexed),
	)
	response.Success(w, result)
}
