package commands_test

import (
	"errors"
	"testing"

	"pathorder/internal/core/application/usecases/commands"
	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/core/domain/model/store"
	"pathorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, id kernel.UUID) *store.Store {
	t.Helper()
	location, err := kernel.NewGeoPoint(37.4981, 127.0276)
	require.NoError(t, err)
	aggregate, err := store.NewStore(id, "Coffee Path", "123 Gangnam-daero", location)
	require.NoError(t, err)
	return aggregate
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), storeID, customerID, testItems(t))

	orderRepo := new(MockOrderRepository)
	storeRepo := new(MockStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Get", mock.Anything, storeID).Return(testStore(t, storeID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, storeID, created.StoreID())
	assert.Equal(t, customerID, created.CustomerID())
	orderRepo.AssertExpectations(t)
	storeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testItems(t))

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPlaceOrderCommandHandler_Handle_StoreNotFound(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), storeID, kernel.NewUUID(), testItems(t))

	orderRepo := new(MockOrderRepository)
	storeRepo := new(MockStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Get", mock.Anything, storeID).
			Return(nil, errs.NewObjectNotFoundError("storeId", storeID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	storeID := kernel.NewUUID()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), storeID, kernel.NewUUID(), testItems(t))

	orderRepo := new(MockOrderRepository)
	storeRepo := new(MockStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Get", mock.Anything, storeID).Return(testStore(t, storeID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
