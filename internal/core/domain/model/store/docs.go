// Package store provides the Store aggregate for the restaurant ordering system.
//
// Stores are read-mostly in the fulfillment core: the distance-ranked listing
// and the operator dashboard both key off a store's identity and geographic
// position. Store profile management is handled by CRUD layers outside the core.
package store
