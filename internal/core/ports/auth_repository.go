package ports

import (
	"context"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
)

// UserRepository defines persistence for user accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
