package order

import (
	"fmt"

	"pathorder/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
// It implements a strictly forward state machine with no backward
// transitions, no skipping, and no branching:
//
//	Pending ──> Preparing ──> Prepared ──> Served ──> Confirmed
//
// Advance moves an order through the first three transitions one step at a
// time; the Served -> Confirmed step is a separate customer-side action
// performed by Confirm. Served and Confirmed are terminal for the operator
// pipeline: advancing an order in either state is an idempotent no-op,
// not an error.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer checkout completes.
	// Orders in this status are waiting for the store to accept them.
	Pending

	// Preparing indicates the store has accepted the order and is preparing it.
	Preparing

	// Prepared indicates the order is ready to be handed to the customer.
	Prepared

	// Served indicates the order has been handed over.
	// The operator pipeline ends here; only the customer can confirm.
	Served

	// Confirmed indicates the customer has confirmed receipt.
	// This is the final state with no further transitions allowed.
	Confirmed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Preparing: "PREPARING",
		Prepared:  "PREPARED",
		Served:    "SERVED",
		Confirmed: "CONFIRMED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Preparing: "PREPARING",
		Prepared:  "PREPARED",
		Served:    "SERVED",
		Confirmed: "CONFIRMED",
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for strings that do not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Preparing, Prepared, Served, Confirmed.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status.
//
// Returns:
//   - "PENDING", "PREPARING", "PREPARED", "SERVED", or "CONFIRMED" for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has left the operator pipeline.
// Served and Confirmed orders no longer appear in the dashboard queues.
func (s Status) IsTerminal() bool {
	return s == Served || s == Confirmed
}

// IsActive reports whether the status belongs to one of the dashboard queues
// (Pending, Preparing, or Prepared).
func (s Status) IsActive() bool {
	return s == Pending || s == Preparing || s == Prepared
}

// Advance returns the next status in the fulfillment pipeline.
//
// Recognized transitions:
//   - Pending -> Preparing
//   - Preparing -> Prepared
//   - Prepared -> Served
//
// Any other status is returned unchanged with advanced == false. Terminal
// statuses are idempotent targets, not errors: advancing a Served or
// Confirmed order is a recognized no-op. Callers that care about ignored
// requests should check the advanced flag and surface it for observability.
//
// Example:
//
//	newStatus, advanced := status.Advance()
//	if !advanced {
//	    // status was terminal; order left unchanged
//	}
func (s Status) Advance() (Status, bool) {
	switch s {
	case Pending:
		return Preparing, true
	case Preparing:
		return Prepared, true
	case Prepared:
		return Served, true
	default:
		return s, false
	}
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Served -> Confirmed (customer acknowledged receipt)
//
// Invalid transitions:
//   - any active status -> Confirmed (order not yet served)
//   - Confirmed -> Confirmed (already confirmed)
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Confirm() (Status, error) {
	if s != Served {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}
