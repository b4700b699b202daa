package persistence

import (
	"context"

	"github.com/amirhossein-jamali/billing-core/internal/domain/entity"
)

// UserRepository persists and retrieves users. Implementations are bound to
// the transaction of the unit of work that handed them out; they never
// commit or roll back on their own.
type UserRepository interface {
	// Get retrieves a user by ID. A missing user is not an error: the
	// returned user is nil and the error is nil. The error return is
	// reserved for infrastructure failures.
	Get(ctx context.Context, id uint64) (*entity.User, error)

	// Add persists a new user and returns the created user with its
	// storage-assigned ID, visible immediately within the enclosing
	// transaction.
	//
	// Possible errors:
	// - ErrDuplicateRecord: if a unique constraint is violated
	// - ErrDatabaseConnection: if the database cannot be reached
	Add(ctx context.Context, user entity.NewUser) (*entity.User, error)
}
