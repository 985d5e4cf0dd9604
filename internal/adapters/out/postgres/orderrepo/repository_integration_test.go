package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"pathorder/internal/adapters/out/postgres/orderrepo"
	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestItems() []order.Item {
	americano, err := order.NewItem(kernel.NewUUID(), "Americano", 4500, 2, []order.Option{
		{Name: "Extra shot", Price: 500},
	})
	suite.Require().NoError(err)

	croissant, err := order.NewItem(kernel.NewUUID(), "Croissant", 3800, 1, nil)
	suite.Require().NoError(err)

	return []order.Item{americano, croissant}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(storeID kernel.UUID) *order.Order {
	aggregate, err := order.NewOrder(
		kernel.NewUUID(), storeID, kernel.NewUUID(), suite.createTestItems(), time.Now())
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(aggregate *order.Order) {
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), aggregate))
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	testOrder := suite.createTestOrder(kernel.NewUUID())

	suite.addOrder(testOrder)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnconstructedOrder_Fails() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})

	suite.Require().Error(err)
	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()
	originalOrder := suite.createTestOrder(kernel.NewUUID())
	suite.addOrder(originalOrder)

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal(originalOrder.StoreID(), retrievedOrder.StoreID())
	suite.Equal(originalOrder.CustomerID(), retrievedOrder.CustomerID())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Equal(originalOrder.Total(), retrievedOrder.Total())

	suite.Require().Len(retrievedOrder.Items(), 2)
	first := retrievedOrder.Items()[0]
	suite.Equal("Americano", first.Name())
	suite.Equal(4500, first.Price())
	suite.Equal(2, first.Quantity())
	suite.Require().Len(first.Options(), 1)
	suite.Equal("Extra shot", first.Options()[0].Name)
	suite.Equal(500, first.Options()[0].Price)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusTransitions() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.NewUUID())
	suite.addOrder(aggregate)

	// Walk the whole pipeline, persisting each step
	for _, expected := range []order.Status{order.Preparing, order.Prepared, order.Served} {
		suite.Require().True(aggregate.Advance())
		suite.Equal(expected, aggregate.Status())

		suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
		suite.Require().NoError(suite.repository.Update(ctx, aggregate))

		persisted, err := suite.repository.Get(ctx, aggregate.ID())
		suite.Require().NoError(err)
		suite.Equal(expected, persisted.Status())
	}

	suite.Require().NoError(aggregate.Confirm())
	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	persisted, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, persisted.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	ctx := context.Background()
	aggregate := suite.createTestOrder(kernel.NewUUID())

	err := suite.repository.Update(ctx, aggregate)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByStore_ReturnsOnlyStoreOrdersInCreationOrder() {
	ctx := context.Background()
	storeID := kernel.NewUUID()
	otherStoreID := kernel.NewUUID()

	base := time.Now().Add(-time.Hour)
	var expected []kernel.UUID
	for i := range 3 {
		aggregate, err := order.NewOrder(
			kernel.NewUUID(), storeID, kernel.NewUUID(),
			suite.createTestItems(), base.Add(time.Duration(i)*time.Minute))
		suite.Require().NoError(err)
		suite.addOrder(aggregate)
		expected = append(expected, aggregate.ID())
	}
	suite.addOrder(suite.createTestOrder(otherStoreID))

	orders, err := suite.repository.GetAllByStore(ctx, storeID)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 3)
	for i, aggregate := range orders {
		suite.Equal(expected[i], aggregate.ID())
		suite.Equal(storeID, aggregate.StoreID())
		suite.NotEmpty(aggregate.Items())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByStoreCreatedBetween_BoundsAreInclusive() {
	ctx := context.Background()
	storeID := kernel.NewUUID()

	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	start := day
	end := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)

	timestamps := []time.Time{
		start.Add(-time.Second), // day before, excluded
		start,                   // lower bound, included
		day.Add(12 * time.Hour), // midday, included
		end,                     // upper bound, included
		end.Add(time.Second),    // next day, excluded
	}

	var ids []kernel.UUID
	for _, createdAt := range timestamps {
		aggregate, err := order.NewOrder(
			kernel.NewUUID(), storeID, kernel.NewUUID(), suite.createTestItems(), createdAt)
		suite.Require().NoError(err)
		suite.addOrder(aggregate)
		ids = append(ids, aggregate.ID())
	}

	orders, err := suite.repository.GetAllByStoreCreatedBetween(ctx, storeID, start, end)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 3)
	suite.Equal(ids[1], orders[0].ID())
	suite.Equal(ids[2], orders[1].ID())
	suite.Equal(ids[3], orders[2].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
