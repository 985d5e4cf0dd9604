package services

import (
	"pathorder/internal/core/domain/model/order"
)

// Dashboard is the operator-facing view of a store's active orders:
// three disjoint queues partitioned by exact status plus the pending count
// shown next to the orders tab.
//
// Every active order appears in exactly one queue; served and confirmed
// orders are omitted entirely. The view is derived, never persisted, and
// recomputed from the full order set on every request.
type Dashboard struct {
	Pending      []*order.Order
	Preparing    []*order.Order
	Prepared     []*order.Order
	PendingCount int
}

// OrderDispatcher is a domain service that partitions a store's orders into
// the operational queues shown on the store-owner dashboard and derives the
// history views that complement them.
//
// All methods are pure functions over the supplied order set. Partitioning is
// recomputed from the full set on every call rather than maintained
// incrementally: per-store order volume is bounded, and rescanning keeps the
// queues consistent with persisted state without invalidation logic.
//
// Example usage:
//
//	dispatcher := NewOrderDispatcher()
//	dashboard := dispatcher.BuildDashboard(orders)
//	fmt.Printf("%d orders awaiting acceptance\n", dashboard.PendingCount)
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// BuildDashboard partitions orders into the pending, preparing, and prepared
// queues by exact status match and computes PendingCount as the length of the
// pending queue.
//
// Orders in terminal states (served, confirmed) are silently omitted from all
// three queues. Within each queue the underlying fetch order is preserved;
// no re-sorting is applied.
func (d OrderDispatcher) BuildDashboard(orders []*order.Order) Dashboard {
	dashboard := Dashboard{
		Pending:   make([]*order.Order, 0),
		Preparing: make([]*order.Order, 0),
		Prepared:  make([]*order.Order, 0),
	}

	for _, o := range orders {
		switch o.Status() {
		case order.Pending:
			dashboard.Pending = append(dashboard.Pending, o)
		case order.Preparing:
			dashboard.Preparing = append(dashboard.Preparing, o)
		case order.Prepared:
			dashboard.Prepared = append(dashboard.Prepared, o)
		default:
			// terminal or invalid status: not part of the dashboard
		}
	}

	dashboard.PendingCount = len(dashboard.Pending)
	return dashboard
}

// PendingCount counts orders in Pending status.
//
// This is deliberately an independent code path from BuildDashboard (it backs
// the lightweight badge endpoint polled by the operator UI), but for the same
// underlying order set it always agrees with Dashboard.PendingCount.
func (d OrderDispatcher) PendingCount(orders []*order.Order) int {
	count := 0
	for _, o := range orders {
		if o.Status() == order.Pending {
			count++
		}
	}
	return count
}

// FilterHistory returns the orders whose fulfillment has left the active
// queues, i.e. those in Served or Confirmed status. This is the complement of
// the dashboard view. The underlying fetch order is preserved.
func (d OrderDispatcher) FilterHistory(orders []*order.Order) []*order.Order {
	history := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status().IsTerminal() {
			history = append(history, o)
		}
	}
	return history
}

// FilterServedHistory returns only the orders in Served status.
//
// The date-range history view surfaces served-but-unconfirmed orders, so it
// additionally excludes Confirmed on top of the active-status exclusion
// applied by FilterHistory.
func (d OrderDispatcher) FilterServedHistory(orders []*order.Order) []*order.Order {
	history := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status() == order.Served {
			history = append(history, o)
		}
	}
	return history
}
