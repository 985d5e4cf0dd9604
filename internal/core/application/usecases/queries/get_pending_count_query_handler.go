package queries

import (
	"context"

	"pathorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingCountQueryHandler counts a store's pending orders in the database.
type GetPendingCountQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingCountQueryHandler creates a handler for pending count queries.
// Requires a GORM database connection for query execution.
func NewGetPendingCountQueryHandler(db *gorm.DB) GetPendingCountQueryHandler {
	return GetPendingCountQueryHandler{db: db}
}

// Handle executes the query and returns the pending order count.
func (h GetPendingCountQueryHandler) Handle(
	ctx context.Context,
	query GetPendingCountQuery,
) (GetPendingCountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPendingCountQueryResponse{}, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE store_id = ? AND status = ?
	`, query.StoreID().Bytes(), order.Pending).Scan(&count).Error
	if err != nil {
		return GetPendingCountQueryResponse{}, err
	}

	return GetPendingCountQueryResponse{PendingCount: int(count)}, nil
}
