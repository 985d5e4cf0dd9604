package queries

import (
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/guard"
)

var (
	ErrListPendingBacklogQueryIsNotConstructed = errors.New(
		"ListPendingBacklogQuery must be created via NewListPendingBacklogQuery constructor",
	)
)

// ListPendingBacklogQuery retrieves the pending order backlog across all
// stores. Backs the periodic monitoring job that flags stores letting
// orders pile up unaccepted.
type ListPendingBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewListPendingBacklogQuery creates a query for the cross-store pending backlog.
// This is a parameterless query that aggregates over every store.
func NewListPendingBacklogQuery() ListPendingBacklogQuery {
	return ListPendingBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListPendingBacklogQueryIsNotConstructed if validation fails.
func (q ListPendingBacklogQuery) Validate() error {
	return q.guard.Validate(ErrListPendingBacklogQueryIsNotConstructed)
}

// PendingBacklogEntry represents one store's pending backlog.
type PendingBacklogEntry struct {
	StoreID      kernel.UUID
	StoreName    string
	PendingCount int
}

// ListPendingBacklogQueryResponse represents the backlog read model,
// largest backlog first. Stores without pending orders are omitted.
type ListPendingBacklogQueryResponse struct {
	Entries []PendingBacklogEntry
}
