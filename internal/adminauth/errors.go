package adminauth

import "errors"

// Service errors.
var (
	// ErrIncorrectPassword means the supplied password did not match the stored hash.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrNotConfigured means no admin password hash exists in the settings store.
	ErrNotConfigured = errors.New("admin password not configured")
	// ErrSettingNotFound is returned by the repository for a missing settings key.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrInvalidToken covers malformed, forged and expired session tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)
