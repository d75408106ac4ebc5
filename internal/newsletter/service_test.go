package newsletter

import (
	"context"
	"errors"
	"testing"

	"github.com/fairplay-hq/fairplay-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	subscribers  map[string]*domain.Subscriber
	createErr    error
	getByEmail   func(email string) (*domain.Subscriber, error)
	deletedIDs   []string
	deleteErr    error
	countErr     error
	createdCalls int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		subscribers: make(map[string]*domain.Subscriber),
	}
}

func (m *mockRepository) ListSubscribers(_ context.Context) ([]domain.Subscriber, error) {
	out := make([]domain.Subscriber, 0, len(m.subscribers))
	for _, s := range m.subscribers {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockRepository) GetByEmail(_ context.Context, email string) (*domain.Subscriber, error) {
	if m.getByEmail != nil {
		return m.getByEmail(email)
	}
	if s, ok := m.subscribers[email]; ok {
		return s, nil
	}
	return nil, ErrSubscriberNotFound
}

func (m *mockRepository) CreateSubscriber(_ context.Context, sub *domain.Subscriber) error {
	m.createdCalls++
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.subscribers[sub.Email]; ok {
		return ErrEmailExists
	}
	sub.ID = "test-subscriber-id"
	sub.IsActive = true
	m.subscribers[sub.Email] = sub
	return nil
}

func (m *mockRepository) DeleteSubscriber(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deletedIDs = append(m.deletedIDs, id)
	for email, s := range m.subscribers {
		if s.ID == id {
			delete(m.subscribers, email)
		}
	}
	return nil
}

func (m *mockRepository) CountSubscribers(_ context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	count := 0
	for _, s := range m.subscribers {
		if s.IsActive {
			count++
		}
	}
	return count, nil
}

func TestSubscribe_CreatesNewSubscriber(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := NewService(repo)

	// Act
	result, err := service.Subscribe(context.Background(), SubscribeInput{
		Email:  "new@example.com",
		Source: "careers_page",
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.AlreadyExists)
	assert.Equal(t, "new@example.com", result.Subscriber.Email)
	assert.Equal(t, "careers_page", result.Subscriber.Source)
}

func TestSubscribe_DefaultsSource(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := NewService(repo)

	// Act
	result, err := service.Subscribe(context.Background(), SubscribeInput{
		Email: "new@example.com",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSubscriberSource, result.Subscriber.Source)
}

func TestSubscribe_NormalizesEmailBeforeWrite(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := NewService(repo)

	// Act
	result, err := service.Subscribe(context.Background(), SubscribeInput{
		Email: "  Mixed.Case@Example.COM ",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "mixed.case@example.com", result.Subscriber.Email)
	_, ok := repo.subscribers["mixed.case@example.com"]
	assert.True(t, ok, "repository should only ever see the normalized address")
}

func TestSubscribe_ExistingEmailIsIdempotent(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	repo.subscribers["taken@example.com"] = &domain.Subscriber{
		ID:       "existing-id",
		Email:    "taken@example.com",
		IsActive: true,
	}
	service := NewService(repo)

	// Act — same address in a different case variant
	result, err := service.Subscribe(context.Background(), SubscribeInput{
		Email: "Taken@Example.com",
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.AlreadyExists)
	assert.Equal(t, "existing-id", result.Subscriber.ID)
}

func TestSubscribe_CreateFails(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	repo.createErr = errors.New("database error")
	service := NewService(repo)

	// Act
	result, err := service.Subscribe(context.Background(), SubscribeInput{
		Email: "new@example.com",
	})

	// Assert
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestSubscribe_FallbackReadFails(t *testing.T) {
	// Arrange — insert hits the unique constraint but the follow-up read
	// also fails (row deleted in between)
	repo := newMockRepository()
	repo.createErr = ErrEmailExists
	repo.getByEmail = func(_ string) (*domain.Subscriber, error) {
		return nil, ErrSubscriberNotFound
	}
	service := NewService(repo)

	// Act
	result, err := service.Subscribe(context.Background(), SubscribeInput{
		Email: "gone@example.com",
	})

	// Assert
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestUnsubscribe_DelegatesToRepository(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	repo.subscribers["bye@example.com"] = &domain.Subscriber{
		ID:       "bye-id",
		Email:    "bye@example.com",
		IsActive: true,
	}
	service := NewService(repo)

	// Act
	err := service.Unsubscribe(context.Background(), "bye-id")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"bye-id"}, repo.deletedIDs)

	count, err := service.CountSubscribers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestUnsubscribe_UnknownIDSucceeds(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := NewService(repo)

	// Act
	err := service.Unsubscribe(context.Background(), "never-existed")

	// Assert
	assert.NoError(t, err)
}
