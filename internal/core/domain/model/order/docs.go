// Package order provides domain entities and business logic for order
// fulfillment in the restaurant ordering system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Item: A value object for a single order line (menu reference, options, quantity)
//   - Status: A state machine that enforces valid fulfillment transitions
//
// Key business rules:
//   - Orders must have valid order, store, and customer identifiers
//   - Line items are non-empty at creation and immutable afterwards
//   - Status follows a strictly forward pipeline:
//     PENDING -> PREPARING -> PREPARED -> SERVED -> CONFIRMED
//   - Advancing a served or confirmed order is an idempotent no-op
//   - Only served orders can be confirmed by the customer
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
