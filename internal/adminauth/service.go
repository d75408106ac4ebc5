package adminauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Service implements admin password verification.
type Service struct {
	repo   Repository
	issuer *TokenIssuer
}

// NewService creates a new admin auth service.
func NewService(repo Repository, issuer *TokenIssuer) *Service {
	return &Service{repo: repo, issuer: issuer}
}

// Verify checks a password against the stored bcrypt hash and returns a fresh
// session token on success.
func (s *Service) Verify(ctx context.Context, password string) (string, error) {
	hash, err := s.repo.GetSetting(ctx, AdminPasswordKey)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return "", ErrNotConfigured
		}
		return "", fmt.Errorf("load admin password hash: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token, err := s.issuer.Issue()
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}

// VerifyToken validates a session token. Satisfies httputil.TokenVerifier.
func (s *Service) VerifyToken(token string) error {
	return s.issuer.VerifyToken(token)
}
