package commands

import (
	"context"

	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/pkg/errs"
)

// ConfirmOrderCommandHandler handles the customer-side confirmation of a
// served order. Unlike Advance, confirming an order that is not in Served
// status is a hard error: the pipeline defines exactly one valid source state
// for this transition.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
// Requires an OrderUoWFactory for transactional persistence.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command and returns the confirmed order.
//
// Fails with errs.ObjectNotFoundError when no order has the given id or the
// order belongs to a different customer, and with a validation error when the
// order is not in Served status.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// An order of another customer is indistinguishable from a missing one.
	if !aggregate.BelongsToCustomer(cmd.CustomerID()) {
		return nil, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	if err = aggregate.Confirm(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
