package ports

import (
	"context"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
// The fulfillment core reads stores for distance ranking and existence
// checks; store profile mutations belong to the CRUD layers.
type StoreRepository interface {
	// Add persists a new store aggregate to storage.
	Add(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no store has the given id.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)

	// GetAll retrieves every store, ordered by name.
	GetAll(ctx context.Context) ([]*store.Store, error)
}
