package careers

import (
	"context"

	"github.com/fairplay-hq/fairplay-backend/internal/domain"
)

// Repository defines the interface for job posting data operations.
type Repository interface {
	ListJobs(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	GetJobByID(ctx context.Context, id string) (*domain.Job, error)
	CreateJob(ctx context.Context, job *domain.Job) error
	UpdateJob(ctx context.Context, job *domain.Job) error
	DeleteJob(ctx context.Context, id string) error
	ToggleJobStatus(ctx context.Context, id string) (*domain.Job, error)
}

// JobFilter represents filter criteria for listing jobs.
type JobFilter struct {
	ActiveOnly bool
}
