// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the ordering system. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderDispatcher: partitions a store's orders into operator dashboard queues
//     and derives the history views that complement them
//   - StoreRanker: orders store listings by geographic proximity to a viewer
//
// Domain services here are pure functions over aggregates supplied by the
// application layer, following Domain-Driven Design principles.
package services
