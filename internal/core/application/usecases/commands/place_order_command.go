package commands

import (
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/pkg/errs"
	"pathorder/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a completed customer checkout: a request to
// create a new order at a store with the selected line items. The created
// order enters the fulfillment pipeline in Pending status.
//
// Example:
//
//	item, _ := order.NewItem(menuID, "Americano", 4500, 2, nil)
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), storeID, customerID, []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	storeID    kernel.UUID
	customerID kernel.UUID
	items      []order.Item

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that all identifiers are valid and that at least one
// properly constructed line item is present.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	storeID kernel.UUID,
	customerID kernel.UUID,
	items []order.Item,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStoreID(storeID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StoreID returns the identifier of the store the order is placed at.
func (c PlaceOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the selected line items.
func (c PlaceOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	c.storeID = storeID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}
