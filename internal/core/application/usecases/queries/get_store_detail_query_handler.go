package queries

import (
	"context"
	"database/sql"
	"errors"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/store"
	"pathorder/internal/core/domain/services"
	"pathorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStoreDetailQueryHandler reads a single store with its social counters
// from the database and enriches it with the viewer's distance.
type GetStoreDetailQueryHandler struct {
	db     *gorm.DB
	ranker services.StoreRanker
}

// NewGetStoreDetailQueryHandler creates a handler for store detail queries.
// Requires a GORM database connection for query execution.
func NewGetStoreDetailQueryHandler(db *gorm.DB) GetStoreDetailQueryHandler {
	return GetStoreDetailQueryHandler{
		db:     db,
		ranker: services.NewStoreRanker(),
	}
}

// Handle executes the query and returns the store detail.
// Fails with errs.ObjectNotFoundError when no store has the given id.
func (h GetStoreDetailQueryHandler) Handle(
	ctx context.Context,
	query GetStoreDetailQuery,
) (GetStoreDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreDetailQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.name,
			s.address,
			s.location_latitude,
			s.location_longitude,
			COUNT(DISTINCT l.id) AS like_count,
			COUNT(DISTINCT CASE WHEN l.customer_id = ? THEN l.id END) AS liked_by_viewer,
			COUNT(DISTINCT r.id) AS review_count
		FROM stores s
		LEFT JOIN likes l ON l.store_id = s.id
		LEFT JOIN reviews r ON r.store_id = s.id
		WHERE s.id = ?
		GROUP BY s.name, s.address, s.location_latitude, s.location_longitude
	`, query.CustomerID().Bytes(), query.StoreID().Bytes()).Row()

	var name, address string
	var latitude, longitude float64
	var likeCount, likedByViewer, reviewCount int

	err := row.Scan(&name, &address, &latitude, &longitude, &likeCount, &likedByViewer, &reviewCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetStoreDetailQueryResponse{},
				errs.NewObjectNotFoundError("store", query.StoreID().String())
		}
		return GetStoreDetailQueryResponse{}, err
	}

	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return GetStoreDetailQueryResponse{}, err
	}

	aggregate, err := store.RestoreStore(query.StoreID(), name, address, location)
	if err != nil {
		return GetStoreDetailQueryResponse{}, err
	}

	listing, err := h.ranker.Enrich(query.Viewer(), services.StoreListing{
		Store:         aggregate,
		LikeCount:     likeCount,
		LikedByViewer: likedByViewer > 0,
		ReviewCount:   reviewCount,
	})
	if err != nil {
		return GetStoreDetailQueryResponse{}, err
	}

	return GetStoreDetailQueryResponse{
		Store: StoreResponse{
			ID:             aggregate.ID(),
			Name:           aggregate.Name(),
			Address:        aggregate.Address(),
			Latitude:       latitude,
			Longitude:      longitude,
			DistanceMeters: listing.DistanceMeters,
			LikeCount:      listing.LikeCount,
			LikedByViewer:  listing.LikedByViewer,
			ReviewCount:    listing.ReviewCount,
		},
	}, nil
}
