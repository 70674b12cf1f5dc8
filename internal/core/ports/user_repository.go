package ports

import (
	"context"

	"github.com/clinichub/clinic-registry/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// The username column carries a unique constraint; Create and Update return
// domain.ErrUsernameTaken when it is violated.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByUsername looks up by the normalized username.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
