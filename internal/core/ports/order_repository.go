package ports

import (
	"context"
	"time"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by store
// and creation time. Orders are never deleted; terminal orders remain
// queryable for history views.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByStore retrieves all orders placed at a store, in creation
	// order, with their line items loaded. Used by the dashboard view,
	// which renders the items of every active order.
	GetAllByStore(ctx context.Context, storeID kernel.UUID) ([]*order.Order, error)

	// GetAllByStoreCreatedBetween retrieves the store's orders whose creation
	// timestamp falls within [start, end] inclusive.
	GetAllByStoreCreatedBetween(
		ctx context.Context, storeID kernel.UUID, start time.Time, end time.Time,
	) ([]*order.Order, error)
}
