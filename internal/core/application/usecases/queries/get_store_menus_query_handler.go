package queries

import (
	"context"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStoreMenusQueryHandler reads a store's menu board from the database.
type GetStoreMenusQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreMenusQueryHandler creates a handler for menu board queries.
// Requires a GORM database connection for query execution.
func NewGetStoreMenusQueryHandler(db *gorm.DB) GetStoreMenusQueryHandler {
	return GetStoreMenusQueryHandler{db: db}
}

// Handle executes the query and returns the store's menus ordered by name.
// Fails with errs.ObjectNotFoundError when no store has the given id; a store
// without menus yields an empty board.
func (h GetStoreMenusQueryHandler) Handle(
	ctx context.Context,
	query GetStoreMenusQuery,
) (GetStoreMenusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreMenusQueryResponse{}, err
	}

	var storeCount int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM stores WHERE id = ?
	`, query.StoreID().Bytes()).Scan(&storeCount).Error
	if err != nil {
		return GetStoreMenusQueryResponse{}, err
	}
	if storeCount == 0 {
		return GetStoreMenusQueryResponse{},
			errs.NewObjectNotFoundError("store", query.StoreID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			description
		FROM menus
		WHERE store_id = ?
		ORDER BY name
	`, query.StoreID().Bytes()).Rows()
	if err != nil {
		return GetStoreMenusQueryResponse{}, err
	}
	defer rows.Close()

	menus := make([]MenuResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var name, description string
		var price int

		if err = rows.Scan(&id, &name, &price, &description); err != nil {
			return GetStoreMenusQueryResponse{}, err
		}

		menuID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetStoreMenusQueryResponse{}, idErr
		}

		menus = append(menus, MenuResponse{
			ID:          menuID,
			Name:        name,
			Price:       price,
			Description: description,
		})
	}
	if err = rows.Err(); err != nil {
		return GetStoreMenusQueryResponse{}, err
	}

	return GetStoreMenusQueryResponse{Menus: menus}, nil
}
