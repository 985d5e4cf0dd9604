package order

import (
	"errors"
	"time"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer's placed purchase at a store. It is the aggregate
// root that tracks the order through the fulfillment pipeline from checkout
// to customer confirmation.
//
// Order follows these invariants:
//   - Must have valid unique order, store, and customer identifiers
//   - Line items are non-empty at creation and immutable afterwards
//   - The creation timestamp is immutable
//   - Status is always one of the defined enum values and transitions follow
//     the pipeline rules enforced by Status
//   - Can only be created through NewOrder or RestoreOrder
//
// Orders are never deleted; served and confirmed orders are retained for
// history and date-range queries.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// storeID identifies the store the order was placed at
	storeID kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// items holds the line items fixed at checkout
	items []Item

	// createdAt is the checkout timestamp, used for date-range filtering
	createdAt time.Time

	// status represents the current state in the fulfillment pipeline
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
// This is the entry point for checkout: all identifiers must be valid,
// the item list must be non-empty with every item constructed via NewItem,
// and the creation timestamp must be set.
func NewOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStoreID(storeID),
		order.setCustomerID(customerID),
		order.setItems(items),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Unlike NewOrder it accepts an arbitrary (valid) status. Used by repository
// adapters to rebuild aggregates from their stored representation.
func RestoreOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	customerID kernel.UUID,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, storeID, customerID, items, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StoreID returns the identifier of the store the order belongs to.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the sum of all line item subtotals.
func (o *Order) Total() int {
	total := 0
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// BelongsToStore reports whether the order was placed at the given store.
// Callers use this to reject cross-store access before mutating an order.
func (o *Order) BelongsToStore(storeID kernel.UUID) bool {
	return o.storeID.IsEqual(storeID)
}

// BelongsToCustomer reports whether the order was placed by the given customer.
func (o *Order) BelongsToCustomer(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

// Advance moves the order one step forward in the fulfillment pipeline:
// Pending -> Preparing -> Prepared -> Served.
//
// The transition is computed from the order's current status; callers do not
// supply a target state. Advancing a Served or Confirmed order is an
// idempotent no-op that leaves the order unchanged and returns false, so
// callers can log ignored requests without treating them as failures.
//
// Example:
//
//	if !order.Advance() {
//	    // order was already served or confirmed; nothing changed
//	}
func (o *Order) Advance() bool {
	newStatus, advanced := o.status.Advance()
	if !advanced {
		return false
	}

	o.status = newStatus
	return true
}

// Confirm marks a served order as confirmed by the customer.
//
// This method enforces the following business rules:
//   - The order must be in Served status
//   - Confirmed is the final state with no further transitions
//
// Returns an error if the order is not in Served status.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setStoreID validates and sets the owning store's identifier.
// This is a private method used only during construction.
func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	o.storeID = storeID
	return nil
}

// setCustomerID validates and sets the owning customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setItems validates and sets the order's line items.
// Line items must be non-empty at creation.
// This is a private method used only during construction.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
