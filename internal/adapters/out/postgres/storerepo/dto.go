// Package storerepo provides data transfer objects and mapping functions for store persistence.
// Besides the store aggregate itself, the package owns the table definitions for menus,
// likes, and reviews: the store read models join them, but the fulfillment core never
// mutates them, so they have no domain aggregates of their own.
package storerepo

import (
	"time"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store aggregates.
type StoreDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"type:varchar(255);not null"`
	Address  string      `gorm:"type:varchar(255)"`
	Location GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for store entities.
// Overrides GORM's default naming convention to use "stores".
func (StoreDTO) TableName() string {
	return "stores"
}

// GeoPointDTO represents the embedded coordinates within the store table.
type GeoPointDTO struct {
	Latitude  float64 `gorm:"type:double precision;not null"`
	Longitude float64 `gorm:"type:double precision;not null"`
}

// MenuDTO represents the database structure for store menu entries.
// Menus are read-only from the fulfillment core's perspective: checkout
// snapshots their name and price into order line items.
type MenuDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Price       int       `gorm:"type:int;not null"`
	Description string    `gorm:"type:text"`
}

// TableName specifies the database table name for menu entities.
func (MenuDTO) TableName() string {
	return "menus"
}

// LikeDTO represents a customer's bookmark of a store.
// One row per (store, customer) pair.
type LikeDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	StoreID    uuid.UUID `gorm:"type:uuid;not null;index:idx_likes_store_customer,unique"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index:idx_likes_store_customer,unique"`
}

// TableName specifies the database table name for like entities.
func (LikeDTO) TableName() string {
	return "likes"
}

// ReviewDTO represents a customer review of a store.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null"`
	Rating     int       `gorm:"type:int;not null"`
	Content    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a store domain aggregate to its database representation.
func fromDomain(aggregate *store.Store) StoreDTO {
	return StoreDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		Location: GeoPointDTO{
			Latitude:  aggregate.Location().Latitude(),
			Longitude: aggregate.Location().Longitude(),
		},
	}
}

// toDomain converts a database DTO to a store domain aggregate using RestoreStore.
func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Latitude, dto.Location.Longitude)
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(id, dto.Name, dto.Address, location)
}
