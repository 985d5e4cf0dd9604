package queries

import (
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/guard"
)

var (
	ErrGetStoreMenusQueryIsNotConstructed = errors.New(
		"GetStoreMenusQuery must be created via NewGetStoreMenusQuery constructor",
	)
)

// GetStoreMenusQuery retrieves the menu board of a store, the catalog a
// customer picks line items from at checkout.
type GetStoreMenusQuery struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStoreMenusQuery creates a query for a store's menu board.
// Validates that the store identifier is valid.
func NewGetStoreMenusQuery(storeID kernel.UUID) (GetStoreMenusQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetStoreMenusQuery{}, err
	}

	return GetStoreMenusQuery{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoreMenusQueryIsNotConstructed if validation fails.
func (q GetStoreMenusQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreMenusQueryIsNotConstructed)
}

// StoreID returns the identifier of the store whose menus are requested.
func (q GetStoreMenusQuery) StoreID() kernel.UUID {
	return q.storeID
}

// MenuResponse represents a menu entry in the read model.
type MenuResponse struct {
	ID          kernel.UUID
	Name        string
	Price       int
	Description string
}

// GetStoreMenusQueryResponse represents the menu board read model,
// ordered by menu name.
type GetStoreMenusQueryResponse struct {
	Menus []MenuResponse
}
