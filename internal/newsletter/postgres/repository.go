// Package postgres provides PostgreSQL implementation of the newsletter repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairplay-hq/fairplay-backend/internal/domain"
	"github.com/fairplay-hq/fairplay-backend/internal/newsletter"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

// Repository implements the newsletter.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ListSubscribers retrieves active subscribers, newest first.
func (r *Repository) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	query := `
		SELECT id, email, source, is_active, created_at, updated_at
		FROM subscribers
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	subscribers := make([]domain.Subscriber, 0)
	for rows.Next() {
		var sub domain.Subscriber
		err := rows.Scan(
			&sub.ID,
			&sub.Email,
			&sub.Source,
			&sub.IsActive,
			&sub.CreatedAt,
			&sub.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subscribers = append(subscribers, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscribers: %w", err)
	}

	return subscribers, nil
}

// GetByEmail retrieves a subscriber by email address.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	query := `
		SELECT id, email, source, is_active, created_at, updated_at
		FROM subscribers
		WHERE email = $1
	`
	var sub domain.Subscriber
	err := r.db.QueryRow(ctx, query, email).Scan(
		&sub.ID,
		&sub.Email,
		&sub.Source,
		&sub.IsActive,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, newsletter.ErrSubscriberNotFound
		}
		return nil, fmt.Errorf("get subscriber by email: %w", err)
	}

	return &sub, nil
}

// CreateSubscriber inserts a new subscriber row. The email unique constraint
// maps to ErrEmailExists so callers can treat duplicates as a normal outcome.
func (r *Repository) CreateSubscriber(ctx context.Context, sub *domain.Subscriber) error {
	query := `
		INSERT INTO subscribers (email, source)
		VALUES ($1, $2)
		RETURNING id, is_active, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		sub.Email,
		sub.Source,
	).Scan(&sub.ID, &sub.IsActive, &sub.CreatedAt, &sub.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return newsletter.ErrEmailExists
		}
		return fmt.Errorf("create subscriber: %w", err)
	}
	return nil
}

// DeleteSubscriber deletes a subscriber by its ID. Unknown ids are not an error.
func (r *Repository) DeleteSubscriber(ctx context.Context, id string) error {
	query := `DELETE FROM subscribers WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	return nil
}

// CountSubscribers counts active subscribers.
func (r *Repository) CountSubscribers(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM subscribers WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return count, nil
}
