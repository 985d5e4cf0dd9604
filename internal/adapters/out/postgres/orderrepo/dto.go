// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for the dashboard (store + status) and history (store + created_at) queries.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID `gorm:"type:uuid;not null;index:idx_orders_store_status;index:idx_orders_store_created"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     int       `gorm:"type:int;not null;index:idx_orders_store_status"`
	CreatedAt  time.Time `gorm:"not null;index:idx_orders_store_created"`
	Items      []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order line items.
// Links to the owning order via foreign key; the selected options are stored
// as a JSON document since they are never queried individually.
type ItemDTO struct {
	ID       int64       `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID   `gorm:"type:uuid;not null;index"`
	MenuID   uuid.UUID   `gorm:"type:uuid;not null"`
	Name     string      `gorm:"type:varchar(255);not null"`
	Price    int         `gorm:"type:int;not null"`
	Quantity int         `gorm:"type:int;not null"`
	Options  []OptionDTO `gorm:"serializer:json"`
}

// TableName specifies the database table name for line item entities.
// Overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// OptionDTO represents a selected menu option within the serialized options document.
type OptionDTO struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all aggregate entities including line items and their selected options.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]ItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		options := make([]OptionDTO, 0, len(item.Options()))
		for _, option := range item.Options() {
			options = append(options, OptionDTO{
				Name:  option.Name,
				Price: option.Price,
			})
		}

		items = append(items, ItemDTO{
			OrderID:  orderID,
			MenuID:   item.MenuID().Bytes(),
			Name:     item.Name(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
			Options:  options,
		})
	}

	return OrderDTO{
		ID:         orderID,
		StoreID:    aggregate.StoreID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, storeID, customerID, items, order.Status(dto.Status), dto.CreatedAt)
}

// itemToDomain converts a line item DTO to its domain value object.
// Uses NewItem to revalidate the persisted snapshot.
func itemToDomain(dto ItemDTO) (order.Item, error) {
	menuID, err := kernel.UUIDFromBytes(dto.MenuID[:])
	if err != nil {
		return order.Item{}, err
	}

	options := make([]order.Option, 0, len(dto.Options))
	for _, option := range dto.Options {
		options = append(options, order.Option{
			Name:  option.Name,
			Price: option.Price,
		})
	}

	return order.NewItem(menuID, dto.Name, dto.Price, dto.Quantity, options)
}
