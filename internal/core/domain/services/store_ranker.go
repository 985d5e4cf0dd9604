package services

import (
	"sort"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/store"
)

// StoreListing is a customer-facing store entry enriched with the computed
// distance from the viewer and social counters. It is derived fresh per
// ranking request and carries no independent lifecycle.
type StoreListing struct {
	Store          *store.Store
	DistanceMeters int
	LikeCount      int
	LikedByViewer  bool
	ReviewCount    int
}

// StoreRanker is a domain service that orders store listings by geographic
// proximity to a viewer.
//
// Example usage:
//
//	ranker := NewStoreRanker()
//	listings, err := ranker.Rank(viewerPosition, listings)
//	if err != nil {
//	    // a listing carried an invalid store
//	}
//	// listings[0] is now the nearest store
type StoreRanker struct{}

// NewStoreRanker creates a new StoreRanker instance.
func NewStoreRanker() StoreRanker {
	return StoreRanker{}
}

// Rank computes DistanceMeters for every listing relative to the viewer's
// position and returns the listings sorted ascending by distance.
//
// The sort is stable: listings at equal distance keep their input order, which
// makes the ranking deterministic without defining a secondary key. The input
// slice is not modified.
func (r StoreRanker) Rank(viewer kernel.GeoPoint, listings []StoreListing) ([]StoreListing, error) {
	ranked := make([]StoreListing, len(listings))
	copy(ranked, listings)

	for i := range ranked {
		if err := ranked[i].Store.Validate(); err != nil {
			return nil, err
		}

		distance, err := ranked[i].Store.DistanceFrom(viewer)
		if err != nil {
			return nil, err
		}
		ranked[i].DistanceMeters = distance
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})

	return ranked, nil
}

// Enrich computes the distance for a single listing without re-sorting.
// Used by the store detail view, which enriches exactly one store.
func (r StoreRanker) Enrich(viewer kernel.GeoPoint, listing StoreListing) (StoreListing, error) {
	if err := listing.Store.Validate(); err != nil {
		return StoreListing{}, err
	}

	distance, err := listing.Store.DistanceFrom(viewer)
	if err != nil {
		return StoreListing{}, err
	}

	listing.DistanceMeters = distance
	return listing, nil
}
