// Package postgres provides PostgreSQL implementation of the careers repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairplay-hq/fairplay-backend/internal/careers"
	"github.com/fairplay-hq/fairplay-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the careers.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListJobs retrieves job postings, newest first.
func (r *Repository) ListJobs(ctx context.Context, filter careers.JobFilter) ([]domain.Job, error) {
	query := `
		SELECT id, title, team, location, type, level, description,
		       requirements, responsibilities, is_active, created_at, updated_at
		FROM jobs
	`

	if filter.ActiveOnly {
		query += " WHERE is_active = TRUE"
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0)
	for rows.Next() {
		var job domain.Job
		err := rows.Scan(
			&job.ID,
			&job.Title,
			&job.Team,
			&job.Location,
			&job.Type,
			&job.Level,
			&job.Description,
			&job.Requirements,
			&job.Responsibilities,
			&job.IsActive,
			&job.CreatedAt,
			&job.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate jobs: %w", err)
	}

	return jobs, nil
}

// GetJobByID retrieves a job posting by its ID.
func (r *Repository) GetJobByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `
		SELECT id, title, team, location, type, level, description,
		       requirements, responsibilities, is_active, created_at, updated_at
		FROM jobs
		WHERE id = $1
	`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Team,
		&job.Location,
		&job.Type,
		&job.Level,
		&job.Description,
		&job.Requirements,
		&job.Responsibilities,
		&job.IsActive,
		&job.CreatedAt,
		&job.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, careers.ErrJobNotFound
		}
		return nil, fmt.Errorf("get job by id: %w", err)
	}

	return &job, nil
}

// CreateJob creates a new job posting. ID and timestamps are assigned by the database.
func (r *Repository) CreateJob(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (title, team, location, type, level, description,
		                  requirements, responsibilities, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		job.Title,
		job.Team,
		job.Location,
		job.Type,
		job.Level,
		job.Description,
		job.Requirements,
		job.Responsibilities,
		job.IsActive,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// UpdateJob replaces a job posting's mutable fields and refreshes updated_at.
// is_active is deliberately left alone; ToggleJobStatus owns that flag.
func (r *Repository) UpdateJob(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs
		SET title = $2, team = $3, location = $4, type = $5, level = $6,
		    description = $7, requirements = $8, responsibilities = $9,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING is_active, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		job.ID,
		job.Title,
		job.Team,
		job.Location,
		job.Type,
		job.Level,
		job.Description,
		job.Requirements,
		job.Responsibilities,
	).Scan(&job.IsActive, &job.CreatedAt, &job.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return careers.ErrJobNotFound
		}
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// DeleteJob deletes a job posting by its ID. Unknown ids are not an error.
func (r *Repository) DeleteJob(ctx context.Context, id string) error {
	query := `DELETE FROM jobs WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// ToggleJobStatus flips is_active in a single statement so concurrent toggles
// cannot lose updates.
func (r *Repository) ToggleJobStatus(ctx context.Context, id string) (*domain.Job, error) {
	query := `
		UPDATE jobs
		SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, team, location, type, level, description,
		          requirements, responsibilities, is_active, created_at, updated_at
	`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.Title,
		&job.Team,
		&job.Location,
		&job.Type,
		&job.Level,
		&job.Description,
		&job.Requirements,
		&job.Responsibilities,
		&job.IsActive,
		&job.CreatedAt,
		&job.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, careers.ErrJobNotFound
		}
		return nil, fmt.Errorf("toggle job status: %w", err)
	}

	return &job, nil
}
