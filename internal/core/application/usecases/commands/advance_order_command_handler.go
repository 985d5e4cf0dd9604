package commands

import (
	"context"
	"log/slog"

	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/pkg/errs"
)

// AdvanceOrderCommandHandler handles the business logic for advancing an
// order through the fulfillment pipeline.
//
// The handler loads the order, applies the single-step advance, and persists
// the result. Advancing an order that is already served or confirmed is a
// recognized no-op: nothing is persisted, the unchanged order is returned,
// and the ignored request is logged so silent misuse stays observable.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement.
// Requires an OrderUoWFactory for transactional persistence and a logger
// for flagging ignored advance requests.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "advance_order_handler"),
	}
}

// Handle processes the advance command and returns the resulting order.
//
// Fails with errs.ObjectNotFoundError when no order has the given id or the
// order belongs to a different store; no write is performed in that case.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
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

	// An order of another store is indistinguishable from a missing one.
	if !aggregate.BelongsToStore(cmd.StoreID()) {
		return nil, errs.NewObjectNotFoundError("orderId", cmd.OrderID().String())
	}

	if !aggregate.Advance() {
		h.logger.WarnContext(ctx, "Ignoring advance request for terminal order",
			"order_id", cmd.OrderID().String(),
			"status", aggregate.Status().String(),
		)
		return aggregate, nil
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
