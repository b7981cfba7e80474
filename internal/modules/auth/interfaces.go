package auth

import (
	"context"

	"framelight/internal/domain"
)

// UserRepositoryInterface — only the methods auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AdminPolicy decides which accounts get the admin role. Configured at
// deployment time, not compiled into the service.
type AdminPolicy interface {
	IsAdminEmail(email string) bool
}
