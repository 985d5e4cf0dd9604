package queries

import (
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/guard"
)

var (
	ErrListStoresQueryIsNotConstructed = errors.New(
		"ListStoresQuery must be created via NewListStoresQuery constructor",
	)
)

// ListStoresQuery retrieves the store directory for a browsing customer:
// every store with its distance from the customer, like counters, and review
// count, sorted nearest first.
//
// Example:
//
//	viewer, _ := kernel.NewGeoPoint(37.4981, 127.0276)
//	query, err := NewListStoresQuery(customerID, viewer)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListStoresQueryHandler(db)
//	stores, err := handler.Handle(ctx, query)
type ListStoresQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	viewer     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewListStoresQuery creates a query for the ranked store directory.
// Validates the customer identifier and the viewer position.
func NewListStoresQuery(customerID kernel.UUID, viewer kernel.GeoPoint) (ListStoresQuery, error) {
	if err := errors.Join(customerID.Validate(), viewer.Validate()); err != nil {
		return ListStoresQuery{}, err
	}

	return ListStoresQuery{
		customerID: customerID,
		viewer:     viewer,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListStoresQueryIsNotConstructed if validation fails.
func (q ListStoresQuery) Validate() error {
	return q.guard.Validate(ErrListStoresQueryIsNotConstructed)
}

// CustomerID returns the identifier of the browsing customer.
func (q ListStoresQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Viewer returns the customer's current position.
func (q ListStoresQuery) Viewer() kernel.GeoPoint {
	return q.viewer
}

// StoreResponse represents a store entry in the directory read model.
type StoreResponse struct {
	ID             kernel.UUID
	Name           string
	Address        string
	Latitude       float64
	Longitude      float64
	DistanceMeters int
	LikeCount      int
	LikedByViewer  bool
	ReviewCount    int
}

// ListStoresQueryResponse represents the store directory read model,
// nearest store first.
type ListStoresQueryResponse struct {
	Stores []StoreResponse
}
