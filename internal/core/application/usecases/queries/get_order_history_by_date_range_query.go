package queries

import (
	"errors"
	"time"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/errs"
	"pathorder/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryByDateRangeQueryIsNotConstructed = errors.New(
		"GetOrderHistoryByDateRangeQuery must be created via NewGetOrderHistoryByDateRangeQuery constructor",
	)
)

// GetOrderHistoryByDateRangeQuery retrieves a store's served orders within a
// settlement date range. Unlike the plain history, confirmed orders are
// excluded: settlement reconciles what the store handed over, and customer
// confirmation is a separate ledger.
//
// The range covers whole days: [start 00:00:00, end 23:59:59] in the dates'
// own location.
type GetOrderHistoryByDateRangeQuery struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID
	start   time.Time
	end     time.Time

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryByDateRangeQuery creates a date-ranged history query.
// Validates the store identifier, that both dates are set, and that the
// range is not inverted.
func NewGetOrderHistoryByDateRangeQuery(
	storeID kernel.UUID, start time.Time, end time.Time,
) (GetOrderHistoryByDateRangeQuery, error) {
	if err := storeID.Validate(); err != nil {
		return GetOrderHistoryByDateRangeQuery{}, err
	}

	if start.IsZero() {
		return GetOrderHistoryByDateRangeQuery{}, errs.NewValueIsRequiredError("start")
	}
	if end.IsZero() {
		return GetOrderHistoryByDateRangeQuery{}, errs.NewValueIsRequiredError("end")
	}
	if end.Before(start) {
		return GetOrderHistoryByDateRangeQuery{}, errs.NewValueIsInvalidError("end is before start")
	}

	return GetOrderHistoryByDateRangeQuery{
		storeID: storeID,
		start:   start,
		end:     end,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryByDateRangeQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryByDateRangeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryByDateRangeQueryIsNotConstructed)
}

// StoreID returns the identifier of the store whose history is requested.
func (q GetOrderHistoryByDateRangeQuery) StoreID() kernel.UUID {
	return q.storeID
}

// Start returns the first day of the range, expanded to 00:00:00.
func (q GetOrderHistoryByDateRangeQuery) Start() time.Time {
	return time.Date(q.start.Year(), q.start.Month(), q.start.Day(), 0, 0, 0, 0, q.start.Location())
}

// End returns the last day of the range, expanded to 23:59:59.
func (q GetOrderHistoryByDateRangeQuery) End() time.Time {
	return time.Date(q.end.Year(), q.end.Month(), q.end.Day(), 23, 59, 59, 0, q.end.Location())
}

// GetOrderHistoryByDateRangeQueryResponse represents the settlement read
// model: served orders within the range, oldest first.
type GetOrderHistoryByDateRangeQueryResponse struct {
	Orders []OrderResponse
}
