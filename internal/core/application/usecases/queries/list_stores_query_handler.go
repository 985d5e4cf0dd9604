package queries

import (
	"context"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/store"
	"pathorder/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListStoresQueryHandler builds the ranked store directory from the database.
// Reads every store with its social counters in a single query and delegates
// distance computation and ordering to the store ranker domain service.
type ListStoresQueryHandler struct {
	db     *gorm.DB
	ranker services.StoreRanker
}

// NewListStoresQueryHandler creates a handler for store directory queries.
// Requires a GORM database connection for query execution.
func NewListStoresQueryHandler(db *gorm.DB) ListStoresQueryHandler {
	return ListStoresQueryHandler{
		db:     db,
		ranker: services.NewStoreRanker(),
	}
}

// Handle executes the query and returns the directory sorted by distance,
// nearest store first. Stores at equal distance keep the name order the
// database returned them in.
func (h ListStoresQueryHandler) Handle(
	ctx context.Context,
	query ListStoresQuery,
) (ListStoresQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListStoresQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
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
		GROUP BY s.id, s.name, s.address, s.location_latitude, s.location_longitude
		ORDER BY s.name
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return ListStoresQueryResponse{}, err
	}
	defer rows.Close()

	listings := make([]services.StoreListing, 0)
	for rows.Next() {
		var id uuid.UUID
		var name, address string
		var latitude, longitude float64
		var likeCount, likedByViewer, reviewCount int

		err = rows.Scan(&id, &name, &address, &latitude, &longitude,
			&likeCount, &likedByViewer, &reviewCount)
		if err != nil {
			return ListStoresQueryResponse{}, err
		}

		storeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListStoresQueryResponse{}, idErr
		}

		location, locErr := kernel.NewGeoPoint(latitude, longitude)
		if locErr != nil {
			return ListStoresQueryResponse{}, locErr
		}

		aggregate, storeErr := store.RestoreStore(storeID, name, address, location)
		if storeErr != nil {
			return ListStoresQueryResponse{}, storeErr
		}

		listings = append(listings, services.StoreListing{
			Store:         aggregate,
			LikeCount:     likeCount,
			LikedByViewer: likedByViewer > 0,
			ReviewCount:   reviewCount,
		})
	}
	if err = rows.Err(); err != nil {
		return ListStoresQueryResponse{}, err
	}

	ranked, err := h.ranker.Rank(query.Viewer(), listings)
	if err != nil {
		return ListStoresQueryResponse{}, err
	}

	stores := make([]StoreResponse, 0, len(ranked))
	for _, listing := range ranked {
		stores = append(stores, StoreResponse{
			ID:             listing.Store.ID(),
			Name:           listing.Store.Name(),
			Address:        listing.Store.Address(),
			Latitude:       listing.Store.Location().Latitude(),
			Longitude:      listing.Store.Location().Longitude(),
			DistanceMeters: listing.DistanceMeters,
			LikeCount:      listing.LikeCount,
			LikedByViewer:  listing.LikedByViewer,
			ReviewCount:    listing.ReviewCount,
		})
	}

	return ListStoresQueryResponse{Stores: stores}, nil
}
