package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-solver/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*dmn.User, error)
}

// SolveRecordRepo stores solved mazes per owner.
type SolveRecordRepo interface {
	// Save inserts the record.
	Save(ctx context.Context, record *dmn.SolveRecord) error

	// ByID retrieves a record owned by ownerID.
	// Returns dmn.ErrRecordNotFound if it does not exist or belongs to someone else.
	ByID(ctx context.Context, ownerID, id uuid.UUID) (*dmn.SolveRecord, error)

	// ByOwner lists the owner's records, newest first.
	ByOwner(ctx context.Context, ownerID uuid.UUID, limit int64) ([]*dmn.SolveRecord, error)
}
