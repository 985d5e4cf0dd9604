package queries

import (
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves a store's completed orders: every order
// that has left the active pipeline (served or confirmed). The history and
// the dashboard are complements over the store's full order set.
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query for a store's order history.
// Validates that the store identifier is valid.
func NewGetOrderHistoryQuery(storeID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// StoreID returns the identifier of the store whose history is requested.
func (q GetOrderHistoryQuery) StoreID() kernel.UUID {
	return q.storeID
}

// GetOrderHistoryQueryResponse represents the order history read model,
// newest orders first.
type GetOrderHistoryQueryResponse struct {
	Orders []OrderResponse
}
