package ports

import (
	"context"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
)

// RegisterInput carries the fields accepted by registration.
type RegisterInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
	Role      string
	DealerID  int
}

// AuthService implements login, registration and session teardown.
// Sessions are bearer tokens; Logout revokes the presented token.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
}

// TokenRevoker tracks revoked session tokens until their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttlSeconds int64) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
