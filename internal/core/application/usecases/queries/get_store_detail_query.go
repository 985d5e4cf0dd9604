package queries

import (
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/guard"
)

var (
	ErrGetStoreDetailQueryIsNotConstructed = errors.New(
		"GetStoreDetailQuery must be created via NewGetStoreDetailQuery constructor",
	)
)

// GetStoreDetailQuery retrieves a single store's profile together with the
// viewer's distance and the store's social counters.
type GetStoreDetailQuery struct { //nolint:recvcheck //using for validation
	storeID    kernel.UUID
	customerID kernel.UUID
	viewer     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewGetStoreDetailQuery creates a query for a store's detail view.
// Validates both identifiers and the viewer position.
func NewGetStoreDetailQuery(
	storeID kernel.UUID, customerID kernel.UUID, viewer kernel.GeoPoint,
) (GetStoreDetailQuery, error) {
	if err := errors.Join(storeID.Validate(), customerID.Validate(), viewer.Validate()); err != nil {
		return GetStoreDetailQuery{}, err
	}

	return GetStoreDetailQuery{
		storeID:    storeID,
		customerID: customerID,
		viewer:     viewer,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoreDetailQueryIsNotConstructed if validation fails.
func (q GetStoreDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreDetailQueryIsNotConstructed)
}

// StoreID returns the identifier of the requested store.
func (q GetStoreDetailQuery) StoreID() kernel.UUID {
	return q.storeID
}

// CustomerID returns the identifier of the viewing customer.
func (q GetStoreDetailQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Viewer returns the customer's current position.
func (q GetStoreDetailQuery) Viewer() kernel.GeoPoint {
	return q.viewer
}

// GetStoreDetailQueryResponse represents the store detail read model.
type GetStoreDetailQueryResponse struct {
	Store StoreResponse
}
