package queries

import (
	"context"

	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads a store's completed orders from the
// database. The dispatcher's history filter decides what counts as
// completed; the handler only fetches candidates.
type GetOrderHistoryQueryHandler struct {
	db         *gorm.DB
	dispatcher services.OrderDispatcher
}

// NewGetOrderHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{
		db:         db,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle executes the query and returns the completed orders, newest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) (GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	orders, err := loadStoreOrders(ctx, h.db, query.StoreID(),
		[]order.Status{order.Served, order.Confirmed})
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	history := h.dispatcher.FilterHistory(orders)

	// loadStoreOrders returns oldest first; history reads newest first.
	responses := toOrderResponses(history)
	for i, j := 0, len(responses)-1; i < j; i, j = i+1, j-1 {
		responses[i], responses[j] = responses[j], responses[i]
	}

	return GetOrderHistoryQueryResponse{Orders: responses}, nil
}
