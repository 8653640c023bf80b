package repository

import (
	"context"
	"fmt"

	"github.com/seniorworks/chatbot-backend/internal/entity"
	"go.uber.org/zap"
)

var sampleJobs = []entity.Job{
	{
		Title:        "초등학교 급식지원",
		Description:  "초등학교 급식실에서 배식 및 정리 업무를 담당합니다.",
		Requirements: "만 60세 이상, 건강상태 양호",
		Salary:       "월 27만원",
		WorkType:     "공익활동형",
		Location:     "서울시 전지역",
	},
	{
		Title:        "가사간병 서비스",
		Description:  "독거노인 및 거동불편한 어르신들의 가사 및 간병을 지원합니다.",
		Requirements: "만 60세 이상, 관련 경험 또는 자격증 우대",
		Salary:       "월 60-80만원",
		WorkType:     "사회서비스형",
		Location:     "서울시 전지역",
	},
	{
		Title:        "실버카페 운영",
		Description:  "노인복지관 내 카페 운영 및 관리업무를 담당합니다.",
		Requirements: "만 60세 이상, 서비스업 경험 우대",
		Salary:       "최저임금 이상",
		WorkType:     "시장형",
		Location:     "서울시 강남구",
	},
}

// SeedJobs inserts the sample catalog once, when the jobs table is empty.
func SeedJobs(ctx context.Context, repo JobRepository, logger *zap.Logger) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("check jobs table: %w", err)
	}
	if count > 0 {
		return nil
	}

	for i := range sampleJobs {
		if _, err := repo.Create(ctx, &sampleJobs[i]); err != nil {
			return fmt.Errorf("seed job %q: %w", sampleJobs[i].Title, err)
		}
	}

	logger.Info("sample jobs seeded", zap.Int("count", len(sampleJobs)))
	return nil
}
