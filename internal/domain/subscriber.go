package domain

import "time"

// DefaultSubscriberSource is used when a signup does not say where it came from.
const DefaultSubscriberSource = "footer"

// Subscriber represents a newsletter subscriber.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
