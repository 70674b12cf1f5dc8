package ports

import (
	"context"

	"github.com/clinichub/clinic-registry/internal/core/domain"
)

// UserInput carries the external representation of a user into the service
// layer. The password is plaintext here and exists only for the duration of
// the call; it is hashed before it reaches any repository.
type UserInput struct {
	ID        int64
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// UserService defines use-case operations for user accounts, including login.
type UserService interface {
	// Save registers a new user when input.ID is zero and replaces the
	// existing record otherwise. On update an empty Password keeps the
	// stored hash.
	Save(ctx context.Context, input UserInput) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindOne(ctx context.Context, id int64) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
}
