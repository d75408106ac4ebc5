package newsletter

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairplay-hq/fairplay-backend/internal/domain"
	"github.com/fairplay-hq/fairplay-backend/internal/pkg/metrics"
)

// Service implements newsletter business logic.
type Service struct {
	repo Repository
}

// NewService creates a new newsletter service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SubscribeInput holds data for a subscribe request.
type SubscribeInput struct {
	Email  string
	Source string
}

// SubscribeResult is the outcome of a subscribe call.
type SubscribeResult struct {
	Subscriber    *domain.Subscriber
	AlreadyExists bool
}

// Subscribe registers an email address, idempotently. Repeated calls with the
// same address (in any case/whitespace variant) return the existing row with
// AlreadyExists set instead of an error.
//
// The insert goes first; a unique-constraint violation falls back to reading
// the existing row. That keeps the duplicate window down to the database's own
// guarantee instead of an application-level check-then-act.
func (s *Service) Subscribe(ctx context.Context, input SubscribeInput) (*SubscribeResult, error) {
	source := input.Source
	if source == "" {
		source = domain.DefaultSubscriberSource
	}

	sub := &domain.Subscriber{
		Email:  NormalizeEmail(input.Email),
		Source: source,
	}

	err := s.repo.CreateSubscriber(ctx, sub)
	if err == nil {
		metrics.SubscribeTotal.WithLabelValues("created").Inc()
		return &SubscribeResult{Subscriber: sub, AlreadyExists: false}, nil
	}

	if !errors.Is(err, ErrEmailExists) {
		metrics.SubscribeTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("create subscriber: %w", err)
	}

	existing, err := s.repo.GetByEmail(ctx, sub.Email)
	if err != nil {
		metrics.SubscribeTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load existing subscriber: %w", err)
	}

	metrics.SubscribeTotal.WithLabelValues("already_exists").Inc()
	return &SubscribeResult{Subscriber: existing, AlreadyExists: true}, nil
}

// ListSubscribers returns active subscribers, newest first.
func (s *Service) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return s.repo.ListSubscribers(ctx)
}

// CountSubscribers returns the number of active subscribers.
func (s *Service) CountSubscribers(ctx context.Context) (int, error) {
	return s.repo.CountSubscribers(ctx)
}

// Unsubscribe removes a subscriber by id. Removing an unknown id succeeds.
func (s *Service) Unsubscribe(ctx context.Context, id string) error {
	return s.repo.DeleteSubscriber(ctx, id)
}
