// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the identity carried by a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	IsAdmin   bool
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
// Tokens are issued by an external identity provider; Generate exists for
// local tooling and tests.
type TokenService interface {
	// GenerateAccessToken signs a token for the given identity.
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, isAdmin bool, ttl time.Duration) (string, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
