package ports

import (
	"context"

	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. Returns an ObjectAlreadyExistsError when the
	// email is already registered (backed by a unique constraint, so the
	// check holds under concurrent registrations).
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identifier.
	// Returns an ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by their unique email address.
	// Returns an ObjectNotFoundError when no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
