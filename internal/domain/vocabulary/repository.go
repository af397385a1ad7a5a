package vocabulary

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for vocabulary entry persistence.
// Entries are append-only; there are no update or delete operations.
type Repository interface {
	// Insert appends a new entry.
	// Storage failures surface as shared.ErrStorageUnavailable (wrapped).
	Insert(ctx context.Context, entry *Entry) error

	// FindByIDForUser finds an entry by ID within a user's vocabulary.
	// The ownership check is folded into the lookup: an entry that exists
	// but belongs to another user yields shared.ErrNotFound.
	FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*Entry, error)

	// ListByCategory returns all of a user's entries in one category,
	// oldest first.
	ListByCategory(ctx context.Context, userID uuid.UUID, category Category) ([]Entry, error)

	// ListForUser returns all of a user's entries across categories,
	// oldest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]Entry, error)
}
