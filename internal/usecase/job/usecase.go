package job

import (
	"context"
	"fmt"

	"github.com/seniorworks/chatbot-backend/internal/entity"
	"github.com/seniorworks/chatbot-backend/internal/repository"
	"go.uber.org/zap"
)

// JobUsecase serves the job catalog read path.
type JobUsecase struct {
	jobRepo repository.JobRepository
	logger  *zap.Logger
}

func NewUsecase(jobRepo repository.JobRepository, logger *zap.Logger) *JobUsecase {
	return &JobUsecase{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// List returns catalog entries, optionally filtered by work type (exact)
// and location (substring).
func (uc *JobUsecase) List(ctx context.Context, workType, location string) ([]*entity.Job, error) {
	jobs, err := uc.jobRepo.List(ctx, workType, location)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}
