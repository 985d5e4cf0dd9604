package queries

import (
	"context"
	"encoding/json"
	"time"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderResponse represents a single order in the read model, with its line
// items and the precomputed total.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     string
	CreatedAt  time.Time
	TotalPrice int
	Items      []ItemResponse
}

// ItemResponse represents an order line item in the read model.
type ItemResponse struct {
	MenuID   kernel.UUID
	Name     string
	Price    int
	Quantity int
	Options  []OptionResponse
	Subtotal int
}

// OptionResponse represents a selected menu option in the read model.
type OptionResponse struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// loadStoreOrders reads a store's orders in the given statuses, together with
// their line items, and reconstructs them as domain aggregates so the domain
// services can partition and filter them. Orders come back in creation order.
func loadStoreOrders(
	ctx context.Context, db *gorm.DB, storeID kernel.UUID, statuses []order.Status,
) ([]*order.Order, error) {
	tx := db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			created_at
		FROM orders
		WHERE store_id = ? AND status IN ?
		ORDER BY created_at
	`, storeID.Bytes(), statuses)

	return scanOrders(ctx, db, tx, storeID)
}

// loadStoreOrdersCreatedBetween is the date-ranged variant of loadStoreOrders.
// Both bounds are inclusive.
func loadStoreOrdersCreatedBetween(
	ctx context.Context, db *gorm.DB, storeID kernel.UUID, statuses []order.Status,
	start time.Time, end time.Time,
) ([]*order.Order, error) {
	tx := db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			created_at
		FROM orders
		WHERE store_id = ? AND status IN ? AND created_at BETWEEN ? AND ?
		ORDER BY created_at
	`, storeID.Bytes(), statuses, start, end)

	return scanOrders(ctx, db, tx, storeID)
}

// scanOrders materializes the rows of an order query into domain aggregates,
// loading the line items of every matched order.
func scanOrders(ctx context.Context, db *gorm.DB, tx *gorm.DB, storeID kernel.UUID) ([]*order.Order, error) {
	type orderRow struct {
		id         uuid.UUID
		customerID uuid.UUID
		status     int
		createdAt  time.Time
	}

	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderRows := make([]orderRow, 0)
	orderIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var row orderRow
		if err = rows.Scan(&row.id, &row.customerID, &row.status, &row.createdAt); err != nil {
			return nil, err
		}
		orderRows = append(orderRows, row)
		orderIDs = append(orderIDs, row.id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orderRows) == 0 {
		return []*order.Order{}, nil
	}

	itemsByOrder, err := loadOrderItems(ctx, db, orderIDs)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(orderRows))
	for _, row := range orderRows {
		id, idErr := kernel.UUIDFromBytes(row.id[:])
		if idErr != nil {
			return nil, idErr
		}
		customerID, idErr := kernel.UUIDFromBytes(row.customerID[:])
		if idErr != nil {
			return nil, idErr
		}

		aggregate, restoreErr := order.RestoreOrder(
			id, storeID, customerID, itemsByOrder[row.id], order.Status(row.status), row.createdAt)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// loadOrderItems reads the line items of the given orders and groups them by
// order ID. The serialized options document is decoded per item.
func loadOrderItems(
	ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID,
) (map[uuid.UUID][]order.Item, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			menu_id,
			name,
			price,
			quantity,
			options
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	itemsByOrder := make(map[uuid.UUID][]order.Item)
	for rows.Next() {
		var orderID, menuID uuid.UUID
		var name string
		var price, quantity int
		var optionsDoc []byte

		if err = rows.Scan(&orderID, &menuID, &name, &price, &quantity, &optionsDoc); err != nil {
			return nil, err
		}

		var options []order.Option
		if len(optionsDoc) > 0 {
			var decoded []OptionResponse
			if err = json.Unmarshal(optionsDoc, &decoded); err != nil {
				return nil, err
			}
			for _, option := range decoded {
				options = append(options, order.Option{Name: option.Name, Price: option.Price})
			}
		}

		itemMenuID, idErr := kernel.UUIDFromBytes(menuID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewItem(itemMenuID, name, price, quantity, options)
		if itemErr != nil {
			return nil, itemErr
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return itemsByOrder, nil
}

// toOrderResponse maps an order aggregate to its read model representation.
func toOrderResponse(aggregate *order.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		options := make([]OptionResponse, 0, len(item.Options()))
		for _, option := range item.Options() {
			options = append(options, OptionResponse{Name: option.Name, Price: option.Price})
		}

		items = append(items, ItemResponse{
			MenuID:   item.MenuID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			Options:  options,
			Subtotal: item.Subtotal(),
		})
	}

	return OrderResponse{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		TotalPrice: aggregate.Total(),
		Items:      items,
	}
}

// toOrderResponses maps a slice of order aggregates, preserving order.
func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, aggregate := range orders {
		responses = append(responses, toOrderResponse(aggregate))
	}
	return responses
}
