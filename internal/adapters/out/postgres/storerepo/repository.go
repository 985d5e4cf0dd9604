package storerepo

import (
	"context"
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/store"
	"pathorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStoreRepository implements StoreRepository using GORM.
type GormStoreRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStoreRepository creates a new GORM store repository.
func NewGormStoreRepository(db *gorm.DB, tracker aggregateTracker) *GormStoreRepository {
	return &GormStoreRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new store to the database.
func (r *GormStoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a store by ID.
func (r *GormStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StoreDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every store.
func (r *GormStoreRepository) GetAll(ctx context.Context) ([]*store.Store, error) {
	var dtos []StoreDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	stores := make([]*store.Store, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stores = append(stores, aggregate)
	}

	return stores, nil
}
