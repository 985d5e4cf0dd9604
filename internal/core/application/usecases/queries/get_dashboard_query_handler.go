package queries

import (
	"context"

	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetDashboardQueryHandler builds the store dashboard from the database.
// Loads the store's active orders and delegates the partitioning to the
// order dispatcher domain service.
type GetDashboardQueryHandler struct {
	db         *gorm.DB
	dispatcher services.OrderDispatcher
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
// Requires a GORM database connection for query execution.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		db:         db,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle executes the query and returns the partitioned dashboard.
// Served and confirmed orders never appear; they belong to the history views.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	orders, err := loadStoreOrders(ctx, h.db, query.StoreID(),
		[]order.Status{order.Pending, order.Preparing, order.Prepared})
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	dashboard := h.dispatcher.BuildDashboard(orders)

	return GetDashboardQueryResponse{
		Pending:      toOrderResponses(dashboard.Pending),
		Preparing:    toOrderResponses(dashboard.Preparing),
		Prepared:     toOrderResponses(dashboard.Prepared),
		PendingCount: dashboard.PendingCount,
	}, nil
}
