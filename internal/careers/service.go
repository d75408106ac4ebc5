package careers

import (
	"context"
	"fmt"

	"github.com/fairplay-hq/fairplay-backend/internal/domain"
)

// Service implements job posting business logic.
type Service struct {
	repo Repository
}

// NewService creates a new careers service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateJobInput holds data for creating a job posting.
type CreateJobInput struct {
	Title            string
	Team             string
	Location         string
	Type             domain.JobType
	Level            domain.JobLevel
	Description      string
	Requirements     []string
	Responsibilities []string
}

// UpdateJobInput holds data for replacing a job posting's mutable fields.
type UpdateJobInput struct {
	Title            string
	Team             string
	Location         string
	Type             domain.JobType
	Level            domain.JobLevel
	Description      string
	Requirements     []string
	Responsibilities []string
}

// ListJobs returns all job postings.
func (s *Service) ListJobs(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	return s.repo.ListJobs(ctx, filter)
}

// GetJobByID returns a single job posting or ErrJobNotFound.
func (s *Service) GetJobByID(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.GetJobByID(ctx, id)
}

// CreateJob creates a new job posting. New postings are active by default.
func (s *Service) CreateJob(ctx context.Context, input CreateJobInput) (*domain.Job, error) {
	if !input.Type.IsValid() {
		return nil, fmt.Errorf("invalid job type: %s", input.Type)
	}
	if !input.Level.IsValid() {
		return nil, fmt.Errorf("invalid job level: %s", input.Level)
	}

	job := &domain.Job{
		Title:            input.Title,
		Team:             input.Team,
		Location:         input.Location,
		Type:             input.Type,
		Level:            input.Level,
		Description:      input.Description,
		Requirements:     input.Requirements,
		Responsibilities: input.Responsibilities,
		IsActive:         true,
	}

	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// UpdateJob performs a full replacement of a job posting's mutable fields.
// IsActive is not touched here; use ToggleJobStatus.
func (s *Service) UpdateJob(ctx context.Context, id string, input UpdateJobInput) (*domain.Job, error) {
	if !input.Type.IsValid() {
		return nil, fmt.Errorf("invalid job type: %s", input.Type)
	}
	if !input.Level.IsValid() {
		return nil, fmt.Errorf("invalid job level: %s", input.Level)
	}

	job := &domain.Job{
		ID:               id,
		Title:            input.Title,
		Team:             input.Team,
		Location:         input.Location,
		Type:             input.Type,
		Level:            input.Level,
		Description:      input.Description,
		Requirements:     input.Requirements,
		Responsibilities: input.Responsibilities,
	}

	if err := s.repo.UpdateJob(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a job posting. Deleting an unknown id is not an error.
func (s *Service) DeleteJob(ctx context.Context, id string) error {
	return s.repo.DeleteJob(ctx, id)
}

// ToggleJobStatus flips a job posting's active flag and returns the updated posting.
func (s *Service) ToggleJobStatus(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.ToggleJobStatus(ctx, id)
}
