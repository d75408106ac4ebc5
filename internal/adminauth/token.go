package adminauth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSubject identifies admin session tokens.
const TokenSubject = "fairplay-admin"

// TokenIssuer issues and verifies signed admin session tokens.
//
// The token is an HS256-signed claim with a server-enforced expiry, so a
// leaked token dies on schedule and a forged one is rejected; the client
// cannot extend its own session by editing what it stores.
type TokenIssuer struct {
	secret          []byte
	sessionDuration time.Duration
}

// NewTokenIssuer creates a token issuer.
func NewTokenIssuer(secret string, sessionDuration time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:          []byte(secret),
		sessionDuration: sessionDuration,
	}
}

// Issue creates a new signed session token.
func (i *TokenIssuer) Issue() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   TokenSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.sessionDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature, expiry and subject of a session token.
func (i *TokenIssuer) VerifyToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != TokenSubject {
		return ErrInvalidToken
	}

	return nil
}
