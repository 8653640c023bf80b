package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seniorworks/chatbot-backend/internal/entity"
)

// JobRepository defines the interface for job catalog persistence
type JobRepository interface {
	List(ctx context.Context, workType, location string) ([]*entity.Job, error)
	Create(ctx context.Context, job *entity.Job) (*entity.Job, error)
	Count(ctx context.Context) (int, error)
}

var _ JobRepository = &JobPostgres{}

// JobPostgres implements JobRepository using PostgreSQL
type JobPostgres struct {
	db *pgxpool.Pool
}

func NewJobPostgres(db *pgxpool.Pool) *JobPostgres {
	return &JobPostgres{db: db}
}

// List filters by exact work type and substring location match; empty
// filters match everything.
func (r *JobPostgres) List(ctx context.Context, workType, location string) ([]*entity.Job, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description,
		       COALESCE(requirements, ''), COALESCE(salary, ''),
		       COALESCE(work_type, ''), COALESCE(location, ''), created_at
		FROM jobs
		WHERE ($1 = '' OR work_type = $1)
		  AND ($2 = '' OR location ILIKE '%' || $2 || '%')
		ORDER BY id`,
		workType, location,
	)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*entity.Job
	for rows.Next() {
		job := &entity.Job{}
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description,
			&job.Requirements, &job.Salary,
			&job.WorkType, &job.Location, &job.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, nil
}

func (r *JobPostgres) Create(ctx context.Context, job *entity.Job) (*entity.Job, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO jobs (title, description, requirements, salary, work_type, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		job.Title, job.Description, job.Requirements, job.Salary, job.WorkType, job.Location,
	)

	created := *job
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	return &created, nil
}

func (r *JobPostgres) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return count, nil
}
