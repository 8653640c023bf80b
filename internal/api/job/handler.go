package job

import (
	"context"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/seniorworks/chatbot-backend/internal/entity"
	"github.com/seniorworks/chatbot-backend/internal/pkg/logger"
	"github.com/seniorworks/chatbot-backend/internal/pkg/response"
	"go.uber.org/zap"
)

type JobUsecase interface {
	List(ctx context.Context, workType, location string) ([]*entity.Job, error)
}

type Handler struct {
	usecase JobUsecase
}

func NewHandler(usecase JobUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// List handles GET /api/jobs - filtered job catalog listing
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListJobs")

	workType := r.URL.Query().Get("work_type")
	location := r.URL.Query().Get("location")

	jobs, err := h.usecase.List(ctx, workType, location)
	if err != nil {
		ctxzap.Error(ctx, "failed to list jobs", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		return
	}

	if jobs == nil {
		jobs = []*entity.Job{}
	}
	response.Success(w, entity.JobListResponse{Jobs: jobs})
}
