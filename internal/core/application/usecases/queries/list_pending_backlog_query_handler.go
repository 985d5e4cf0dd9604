package queries

import (
	"context"

	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPendingBacklogQueryHandler aggregates pending orders per store in the database.
type ListPendingBacklogQueryHandler struct {
	db *gorm.DB
}

// NewListPendingBacklogQueryHandler creates a handler for backlog queries.
// Requires a GORM database connection for query execution.
func NewListPendingBacklogQueryHandler(db *gorm.DB) ListPendingBacklogQueryHandler {
	return ListPendingBacklogQueryHandler{db: db}
}

// Handle executes the query and returns the per-store pending counts,
// largest backlog first.
func (h ListPendingBacklogQueryHandler) Handle(
	ctx context.Context,
	query ListPendingBacklogQuery,
) (ListPendingBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPendingBacklogQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.store_id,
			s.name,
			COUNT(*) AS pending_count
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		WHERE o.status = ?
		GROUP BY o.store_id, s.name
		ORDER BY pending_count DESC, s.name
	`, order.Pending).Rows()
	if err != nil {
		return ListPendingBacklogQueryResponse{}, err
	}
	defer rows.Close()

	entries := make([]PendingBacklogEntry, 0)
	for rows.Next() {
		var storeID uuid.UUID
		var storeName string
		var pendingCount int

		if err = rows.Scan(&storeID, &storeName, &pendingCount); err != nil {
			return ListPendingBacklogQueryResponse{}, err
		}

		id, idErr := kernel.UUIDFromBytes(storeID[:])
		if idErr != nil {
			return ListPendingBacklogQueryResponse{}, idErr
		}

		entries = append(entries, PendingBacklogEntry{
			StoreID:      id,
			StoreName:    storeName,
			PendingCount: pendingCount,
		})
	}
	if err = rows.Err(); err != nil {
		return ListPendingBacklogQueryResponse{}, err
	}

	return ListPendingBacklogQueryResponse{Entries: entries}, nil
}
