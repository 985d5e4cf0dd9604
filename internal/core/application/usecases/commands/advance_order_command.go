package commands

import (
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// AdvanceOrderCommand represents a store operator's request to move an order
// one step forward in the fulfillment pipeline.
//
// The command carries no target state: the next state is computed from the
// order's current status, so a stale dashboard can never push an order more
// than one step or backwards.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(storeID, orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, logger)
//	updated, err := handler.Handle(ctx, cmd)
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
// Validates that both identifiers are valid.
func NewAdvanceOrderCommand(storeID kernel.UUID, orderID kernel.UUID) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setOrderID(orderID),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// StoreID returns the identifier of the store issuing the request.
func (c AdvanceOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AdvanceOrderCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	c.storeID = storeID
	return nil
}

func (c *AdvanceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
