package sku

import (
	"context"

	"github.com/google/uuid"
)

// RecordRepository defines the interface for SKU record persistence.
// The store is append-only from the domain's point of view: there are no
// update or delete operations, and inserting never overwrites.
type RecordRepository interface {
	// Insert appends a new record and fills in its generated ID.
	// Storage failures surface as shared.ErrStorageUnavailable (wrapped).
	Insert(ctx context.Context, record *Record) error

	// ListRecent returns up to limit records owned by the user,
	// most-recent-first by creation order.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]Record, error)

	// CountForUser counts all records owned by the user.
	CountForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
