package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

var integrationReceivedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// createTestOrder creates a freshly received order with two line items.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number string) *order.Order {
	pasta, err := order.NewLineItem("Pasta Carbonara", 2, "extra cheese", []string{"no bacon"})
	suite.Require().NoError(err)
	tiramisu, err := order.NewLineItem("Tiramisu", 1, "", nil)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), number, order.OriginDineIn, "table 7",
		[]order.LineItem{pasta, tiramisu}, order.PriorityNormal, 15, integrationReceivedAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

// createOrderWithStatus walks a fresh order through the lifecycle up to status.
func (suite *OrderRepositoryIntegrationTestSuite) createOrderWithStatus(
	number string, status order.Status,
) *order.Order {
	testOrder := suite.createTestOrder(number)
	if status == order.Received {
		return testOrder
	}

	staffID := kernel.NewUUID()
	suite.Require().NoError(testOrder.StartPreparation(&staffID, integrationReceivedAt.Add(2*time.Minute)))
	if status == order.Preparing {
		return testOrder
	}

	suite.Require().NoError(testOrder.MarkReady(integrationReceivedAt.Add(14 * time.Minute)))
	if status == order.Ready {
		return testOrder
	}

	suite.Require().NoError(testOrder.MarkServed())
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(testOrder *order.Order) {
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testOrder))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-001")

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_Fails() {
	ctx := context.Background()
	first := suite.createTestOrder("ORD-001")
	second := suite.createTestOrder("ORD-001")

	suite.addOrder(first)

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-002")
	suite.addOrder(testOrder)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.Equal("ORD-002", retrieved.OrderNumber())
	suite.Equal(order.OriginDineIn, retrieved.Origin())
	suite.Equal("table 7", retrieved.TableRef())
	suite.Equal(order.PriorityNormal, retrieved.Priority())
	suite.Equal(order.Received, retrieved.Status())
	suite.Equal(15, retrieved.EstimatedPrepMinutes())
	suite.True(retrieved.ReceivedAt().Equal(integrationReceivedAt))
	suite.Nil(retrieved.StartedAt())
	suite.Nil(retrieved.CompletedAt())
	suite.Nil(retrieved.AssignedStaff())

	items := retrieved.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Pasta Carbonara", items[0].Name())
	suite.Equal(2, items[0].Quantity())
	suite.Equal("extra cheese", items[0].Notes())
	suite.Equal([]string{"no bacon"}, items[0].Modifiers())
	suite.Equal("Tiramisu", items[1].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_LifecycleTransitions_Persist() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-003")
	suite.addOrder(testOrder)

	staffID := kernel.NewUUID()
	startedAt := integrationReceivedAt.Add(2 * time.Minute)
	suite.Require().NoError(testOrder.StartPreparation(&staffID, startedAt))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, retrieved.Status())
	suite.Require().NotNil(retrieved.StartedAt())
	suite.True(retrieved.StartedAt().Equal(startedAt))
	suite.Require().NotNil(retrieved.AssignedStaff())
	suite.True(retrieved.AssignedStaff().IsEqual(staffID))

	completedAt := integrationReceivedAt.Add(14 * time.Minute)
	suite.Require().NoError(testOrder.MarkReady(completedAt))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, retrieved.Status())
	suite.Require().NotNil(retrieved.CompletedAt())
	suite.True(retrieved.CompletedAt().Equal(completedAt))
	suite.Require().NotNil(retrieved.ActualPrepMinutes())
	suite.Equal(12, *retrieved.ActualPrepMinutes())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-004")

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestArchive_ServedOrder_LeavesActiveStore() {
	ctx := context.Background()
	testOrder := suite.createOrderWithStatus("ORD-005", order.Served)
	suite.addOrder(testOrder)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(suite.repository.Archive(ctx, testOrder.ID()))

	// The row stays in the table but no longer matches active reads.
	suite.assertOrderCount(1)

	_, err := suite.repository.Get(ctx, testOrder.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Empty(active)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestArchive_UnknownOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Archive(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_ReturnsEveryStatusOrderedByIntake() {
	ctx := context.Background()

	// Stagger intake times so the ordering is deterministic.
	late := suite.createTestOrder("ORD-010")
	suite.addOrder(late)

	early, err := order.NewOrder(
		kernel.NewUUID(), "ORD-011", order.OriginTakeaway, "",
		late.Items(), order.PriorityUrgent, 10, integrationReceivedAt.Add(-time.Hour),
	)
	suite.Require().NoError(err)
	suite.addOrder(early)

	preparing := suite.createOrderWithStatus("ORD-012", order.Preparing)
	suite.addOrder(preparing)

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 3)
	suite.Equal("ORD-011", active[0].OrderNumber())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInPreparingStatus_FiltersByStatus() {
	ctx := context.Background()

	suite.addOrder(suite.createOrderWithStatus("ORD-020", order.Received))
	preparing := suite.createOrderWithStatus("ORD-021", order.Preparing)
	suite.addOrder(preparing)
	suite.addOrder(suite.createOrderWithStatus("ORD-022", order.Ready))

	inPreparation, err := suite.repository.GetAllInPreparingStatus(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(inPreparation, 1)
	suite.True(inPreparation[0].ID().IsEqual(preparing.ID()))
	suite.Equal(order.Preparing, inPreparation[0].Status())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_ReturnsOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder("ORD-030")
	suite.addOrder(testOrder)

	retrieved, err := suite.repository.GetForUpdate(ctx, testOrder.ID())

	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.tracker.AssertExpectations(suite.T())
}

// assertOrderCount verifies the number of order rows in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
