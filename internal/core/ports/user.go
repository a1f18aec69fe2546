package ports

import (
	"context"

	"github.com/philipjohn05/taskapp-portfolio/internal/core/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) error
	Exists(ctx context.Context, userID string) (bool, error)
}

type UserService interface {
	EnsureUserExists(ctx context.Context, email, displayName string) (string, error)
	UserExists(ctx context.Context, userID string) (bool, error)
}

// IdentityResolver decides which user a request acts as.
type IdentityResolver interface {
	ResolveUserID(ctx context.Context) (string, error)
}
