package commands

import (
	"context"
	"time"

	"pathorder/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Verifies the target store exists and creates the order in Pending status.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(orderID, storeID, customerID, items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// created is now pending acceptance on the store dashboard
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory because placement reads the store aggregate while
// writing the order aggregate.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Fails with errs.ObjectNotFoundError when the store does not exist.
// Uses a transaction to ensure the order is fully persisted or rolled back.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.StoreRepository().Get(ctx, cmd.StoreID()); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.StoreID(), cmd.CustomerID(), cmd.Items(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
