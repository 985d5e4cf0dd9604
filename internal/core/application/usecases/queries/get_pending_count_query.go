package queries

import (
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/guard"
)

var (
	ErrGetPendingCountQueryIsNotConstructed = errors.New(
		"GetPendingCountQuery must be created via NewGetPendingCountQuery constructor",
	)
)

// GetPendingCountQuery retrieves the number of orders awaiting acceptance at
// a store. Backs the badge counter that clients poll frequently, so it reads
// a bare count instead of loading the full dashboard.
type GetPendingCountQuery struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPendingCountQuery creates a query for a store's pending order count.
// Validates that the store identifier is valid.
func NewGetPendingCountQuery(storeID kernel.UUID) (GetPendingCountQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetPendingCountQuery{}, err
	}

	return GetPendingCountQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingCountQueryIsNotConstructed if validation fails.
func (q GetPendingCountQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCountQueryIsNotConstructed)
}

// StoreID returns the identifier of the store whose pending count is requested.
func (q GetPendingCountQuery) StoreID() kernel.UUID {
	return q.storeID
}

// GetPendingCountQueryResponse represents the pending counter read model.
// The count always agrees with the Pending queue of the dashboard built from
// the same order set.
type GetPendingCountQueryResponse struct {
	PendingCount int
}
