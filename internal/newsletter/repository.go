package newsletter

import (
	"context"

	"github.com/fairplay-hq/fairplay-backend/internal/domain"
)

// Repository defines the interface for subscriber data operations.
//
// Implementations receive already-normalized email addresses; callers go
// through NormalizeEmail first.
type Repository interface {
	// ListSubscribers returns active subscribers, newest first.
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
	// GetByEmail returns ErrSubscriberNotFound when no row matches.
	GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error)
	// CreateSubscriber returns ErrEmailExists when the unique constraint fires.
	CreateSubscriber(ctx context.Context, sub *domain.Subscriber) error
	// DeleteSubscriber removes a row by id. Unknown ids are not an error.
	DeleteSubscriber(ctx context.Context, id string) error
	// CountSubscribers counts active subscribers only.
	CountSubscribers(ctx context.Context) (int, error)
}
