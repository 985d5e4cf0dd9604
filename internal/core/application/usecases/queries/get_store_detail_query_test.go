package queries_test

import (
	"testing"

	"pathorder/internal/core/application/usecases/queries"
	"pathorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStoreDetailQuery_ValidInput(t *testing.T) {
	storeID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	viewer, err := kernel.NewGeoPoint(37.4981, 127.0276)
	require.NoError(t, err)

	query, err := queries.NewGetStoreDetailQuery(storeID, customerID, viewer)

	require.NoError(t, err)
	assert.Equal(t, storeID, query.StoreID())
	assert.Equal(t, customerID, query.CustomerID())
	assert.Equal(t, viewer, query.Viewer())
}

func TestNewGetStoreDetailQuery_InvalidInput(t *testing.T) {
	viewer, _ := kernel.NewGeoPoint(37.4981, 127.0276)

	_, err := queries.NewGetStoreDetailQuery(kernel.UUID{}, kernel.NewUUID(), viewer)
	require.Error(t, err)

	_, err = queries.NewGetStoreDetailQuery(kernel.NewUUID(), kernel.UUID{}, viewer)
	require.Error(t, err)

	_, err = queries.NewGetStoreDetailQuery(kernel.NewUUID(), kernel.NewUUID(), kernel.GeoPoint{})
	require.Error(t, err)
}

func TestGetStoreDetailQuery_Validate_ZeroValue(t *testing.T) {
	query := queries.GetStoreDetailQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetStoreDetailQueryIsNotConstructed)
}
