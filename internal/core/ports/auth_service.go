package ports

import (
	"context"

	"github.com/argomobile/studio-api/internal/core/domain"
)

// AuthService verifies credentials and issues bearer tokens. It sits at the
// boundary of the core: everything past login deals only in Principals.
type AuthService interface {
	// Login returns a signed token and the account's public profile.
	Login(ctx context.Context, username, password string) (string, *domain.UserProfile, error)
	// Logout revokes the given token until its natural expiry.
	Logout(ctx context.Context, token string) error
}

// TokenRevoker records revoked tokens. Implementations may be absent at
// wiring time, in which case logout is a no-op.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttlSeconds int64) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
