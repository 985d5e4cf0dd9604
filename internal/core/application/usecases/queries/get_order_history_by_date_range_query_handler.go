package queries

import (
	"context"

	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrderHistoryByDateRangeQueryHandler reads a store's served orders
// created within a date range from the database.
type GetOrderHistoryByDateRangeQueryHandler struct {
	db         *gorm.DB
	dispatcher services.OrderDispatcher
}

// NewGetOrderHistoryByDateRangeQueryHandler creates a handler for date-ranged
// history queries. Requires a GORM database connection for query execution.
func NewGetOrderHistoryByDateRangeQueryHandler(db *gorm.DB) GetOrderHistoryByDateRangeQueryHandler {
	return GetOrderHistoryByDateRangeQueryHandler{
		db:         db,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle executes the query and returns the served orders within the range,
// oldest first. Both range bounds are inclusive.
func (h GetOrderHistoryByDateRangeQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryByDateRangeQuery,
) (GetOrderHistoryByDateRangeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderHistoryByDateRangeQueryResponse{}, err
	}

	orders, err := loadStoreOrdersCreatedBetween(ctx, h.db, query.StoreID(),
		[]order.Status{order.Served}, query.Start(), query.End())
	if err != nil {
		return GetOrderHistoryByDateRangeQueryResponse{}, err
	}

	served := h.dispatcher.FilterServedHistory(orders)

	return GetOrderHistoryByDateRangeQueryResponse{Orders: toOrderResponses(served)}, nil
}
