package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "pathorder/internal/adapters/out/postgres"
	"pathorder/internal/adapters/out/postgres/orderrepo"
	"pathorder/internal/adapters/out/postgres/storerepo"
	"pathorder/internal/core/domain/model/kernel"
	"pathorder/internal/core/domain/model/order"
	"pathorder/internal/core/domain/model/store"
	"pathorder/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &storerepo.StoreDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, stores").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// createTestOrder builds a valid pending order for transaction tests.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(storeID kernel.UUID) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), "Americano", 4500, 1, nil)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), storeID, kernel.NewUUID(), []order.Item{item}, time.Now())
	suite.Require().NoError(err)
	return aggregate
}

// createTestStore builds a valid store aggregate for transaction tests.
func (suite *UnitOfWorkIntegrationTestSuite) createTestStore() *store.Store {
	location, err := kernel.NewGeoPoint(37.4981, 127.0276)
	suite.Require().NoError(err)

	aggregate, err := store.NewStore(kernel.NewUUID(), "Coffee Path", "123 Gangnam-daero", location)
	suite.Require().NoError(err)
	return aggregate
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.StoreRepository(), "First instance should provide store repository")
	suite.NotNil(uow2.OrderRepository(), "Second instance should provide order repository")
	suite.NotNil(uow2.StoreRepository(), "Second instance should provide store repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test order
	testOrder := suite.createTestOrder(kernel.NewUUID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testStore := suite.createTestStore()
	testOrder := suite.createTestOrder(testStore.ID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities using different repositories within same transaction
	err = uow.StoreRepository().Add(ctx, testStore)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Advance the order and persist the transition in the same transaction
	suite.Require().True(testOrder.Advance())
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both entities persisted correctly
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testStore.ID(), retrievedOrder.StoreID())
	suite.Equal(order.Preparing, retrievedOrder.Status())

	retrievedStore, err := newUow.StoreRepository().Get(ctx, testStore.ID())
	suite.Require().NoError(err)
	suite.Equal(testStore.Name(), retrievedStore.Name())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testStore := suite.createTestStore()
	testOrder := suite.createTestOrder(testStore.ID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.StoreRepository().Add(ctx, testStore)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = uow.StoreRepository().Get(ctx, testStore.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.StoreRepository().Get(ctx, testStore.ID())
	suite.Require().Error(err, "Store should not exist after rollback")
}

// TestUnitOfWork_AggregateTracking verifies that aggregate tracking mechanism works
// during unit of work operations by ensuring repository operations complete successfully.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AggregateTracking() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testStore := suite.createTestStore()
	testOrder := suite.createTestOrder(testStore.ID())

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities (repositories should track aggregates internally)
	err = uow.StoreRepository().Add(ctx, testStore)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Update entities (repositories should track aggregates internally)
	suite.Require().True(testOrder.Advance())
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	// Commit transaction - if aggregate tracking is working properly, this should succeed
	err = uow.Commit(ctx)
	suite.Require().NoError(err)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
