package store

import (
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/pkg/errs"
)

var (
	// ErrStoreIsNotConstructed is returned when a Store instance was not created through
	// the NewStore or RestoreStore factory methods.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore or RestoreStore constructor")
)

// Store represents a restaurant that customers order from. It is an aggregate
// root holding the store's identity and geographic position.
//
// The core reads stores to rank listings by distance from a viewer; store
// management (menus, credentials, profile edits) lives in the CRUD layers
// outside this core.
type Store struct {
	// id is the unique identifier for the store
	id kernel.UUID

	// name is the customer-facing store name
	name string

	// address is the human-readable street address
	address string

	// location is the store's geographic position used for distance ranking
	location kernel.GeoPoint

	// isConstructed ensures the store was created via a constructor
	isConstructed bool
}

// NewStore creates a new Store instance with validation.
// The identifier and location must be valid and the name non-empty.
func NewStore(id kernel.UUID, name string, address string, location kernel.GeoPoint) (*Store, error) {
	store := &Store{
		isConstructed: true,
	}

	if err := errors.Join(
		store.setID(id),
		store.setName(name),
		store.setAddress(address),
		store.setLocation(location),
	); err != nil {
		return nil, err
	}

	return store, nil
}

// RestoreStore reconstructs a Store from persistence.
func RestoreStore(id kernel.UUID, name string, address string, location kernel.GeoPoint) (*Store, error) {
	return NewStore(id, name, address, location)
}

// Validate ensures the Store instance was properly constructed through a constructor.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}

	return nil
}

// IsEqual compares two stores by their unique identifiers.
func (s *Store) IsEqual(other *Store) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the customer-facing store name.
func (s *Store) Name() string {
	return s.name
}

// Address returns the store's street address.
func (s *Store) Address() string {
	return s.address
}

// Location returns the store's geographic position.
func (s *Store) Location() kernel.GeoPoint {
	return s.location
}

// DistanceFrom returns the great-circle distance in meters between the store
// and the given viewer position.
func (s *Store) DistanceFrom(viewer kernel.GeoPoint) (int, error) {
	return s.location.DistanceTo(viewer)
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Store) setAddress(address string) error {
	s.address = address
	return nil
}

func (s *Store) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}
