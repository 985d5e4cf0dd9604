// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
)

// GetDashboardQuery retrieves the operational dashboard of a store: its
// active orders partitioned into the pending, preparing, and prepared queues.
//
// Example:
//
//	query, err := NewGetDashboardQuery(storeID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetDashboardQueryHandler(db)
//	dashboard, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load dashboard: %w", err)
//	}
//
//	fmt.Printf("%d orders awaiting acceptance\n", dashboard.PendingCount)
type GetDashboardQuery struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query for a store's dashboard.
// Validates that the store identifier is valid.
func NewGetDashboardQuery(storeID kernel.UUID) (GetDashboardQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetDashboardQuery{}, err
	}

	return GetDashboardQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardQueryIsNotConstructed if validation fails.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// StoreID returns the identifier of the store whose dashboard is requested.
func (q GetDashboardQuery) StoreID() kernel.UUID {
	return q.storeID
}

// GetDashboardQueryResponse represents the dashboard read model.
// Each queue holds the orders in exactly that status, oldest first;
// PendingCount always equals len(Pending).
type GetDashboardQueryResponse struct {
	Pending      []OrderResponse
	Preparing    []OrderResponse
	Prepared     []OrderResponse
	PendingCount int
}
