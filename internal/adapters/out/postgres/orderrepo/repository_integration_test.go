package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"cleanly/internal/adapters/out/postgres/orderrepo"
	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
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

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.placeOrder(7)

	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.weighedOrder(11, order.ReceivedByFacility)
	suite.tracker.On("TrackAggregate", original.ID().String(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.UserID(), retrieved.UserID())
	suite.Equal(order.ServiceWashFold, retrieved.Service())
	suite.Equal(order.PickupByCourier, retrieved.PickupOption())
	suite.Equal(order.DeliverySelfPickup, retrieved.DeliveryOption())
	suite.True(retrieved.Weight().Equal(decimal.NewFromInt(3)))
	suite.True(retrieved.Price().Equal(decimal.NewFromInt(17000)))
	suite.Equal(order.ReceivedByFacility, retrieved.Status())
	suite.Equal(order.PaymentUnpaid, retrieved.PaymentStatus())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	missingID, err := order.NewID(999)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, missingID)
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleProgress() {
	ctx := context.Background()

	testOrder := suite.placeOrder(21)
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := testOrder.AdvanceTo(order.Accepted, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReweighingPersistsCorrectedValues() {
	ctx := context.Background()

	testOrder := suite.weighedOrder(22, order.ReceivedByFacility)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Correcting a mistaken weighing back down must persist the new values.
	_, err := testOrder.ApplyWeighing(decimal.NewFromInt(1), decimal.NewFromInt(5000), time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.Weight().Equal(decimal.NewFromInt(1)))
	suite.True(retrieved.Price().Equal(decimal.NewFromInt(5000)))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	ghost := suite.placeOrder(404)

	err := suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSetComplaintIfEmpty_FirstComplaintWins() {
	ctx := context.Background()

	testOrder := suite.placeOrder(31)
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.SetComplaintIfEmpty(
		ctx, testOrder.ID(), "Shirt came back stained", "https://img.example/1.jpg", time.Now(),
	)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("Shirt came back stained", retrieved.ComplaintDescription())
	suite.Equal("https://img.example/1.jpg", retrieved.ComplaintImageURL())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSetComplaintIfEmpty_SecondComplaintConflicts() {
	ctx := context.Background()

	testOrder := suite.placeOrder(32)
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.SetComplaintIfEmpty(
		ctx, testOrder.ID(), "first complaint", "", time.Now(),
	))

	err := suite.repository.SetComplaintIfEmpty(
		ctx, testOrder.ID(), "second complaint", "", time.Now(),
	)
	suite.Require().Error(err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)

	// The first submission stays untouched.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("first complaint", retrieved.ComplaintDescription())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSetComplaintIfEmpty_ConcurrentSubmissions_ExactlyOneWins() {
	ctx := context.Background()

	testOrder := suite.placeOrder(33)
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	const attempts = 5
	results := make(chan error, attempts)

	for i := range attempts {
		go func(n int) {
			results <- suite.repository.SetComplaintIfEmpty(
				ctx, testOrder.ID(), "concurrent complaint", "", time.Now().Add(time.Duration(n)),
			)
		}(i)
	}

	successes := 0
	conflicts := 0
	for range attempts {
		err := <-results
		switch {
		case err == nil:
			successes++
		default:
			var alreadyExistsErr *errs.ObjectAlreadyExistsError
			suite.Require().ErrorAs(err, &alreadyExistsErr)
			conflicts++
		}
	}

	suite.Equal(1, successes)
	suite.Equal(attempts-1, conflicts)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSetComplaintIfEmpty_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	missingID, err := order.NewID(404)
	suite.Require().NoError(err)

	err = suite.repository.SetComplaintIfEmpty(ctx, missingID, "lost laundry", "", time.Now())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllBilledBefore_ReturnsOnlyStaleBilledOrders() {
	ctx := context.Background()
	now := time.Now()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("string"), mock.Anything).Times(3)

	// Billed two days ago: stale.
	stale := suite.billedOrderAt(41, now.Add(-48*time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	// Billed an hour ago: fresh.
	fresh := suite.billedOrderAt(42, now.Add(-time.Hour))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))

	// Old but never billed.
	unbilled := suite.placeOrder(43)
	suite.Require().NoError(suite.repository.Add(ctx, unbilled))

	billed, err := suite.repository.GetAllBilledBefore(ctx, now.Add(-24*time.Hour))
	suite.Require().NoError(err)

	suite.Require().Len(billed, 1)
	suite.Equal(stale.ID(), billed[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

// placeOrder creates a fresh Incoming order with default fulfillment options.
func (suite *OrderRepositoryIntegrationTestSuite) placeOrder(sequence int64) *order.Order {
	id, err := order.NewID(sequence)
	suite.Require().NoError(err)

	placed, err := order.NewOrder(
		id,
		kernel.NewUUID(),
		order.ServiceWashFold,
		order.PickupByCourier,
		order.DeliverySelfPickup,
		time.Now(),
	)
	suite.Require().NoError(err)
	return placed
}

// weighedOrder creates an order that has been weighed at 3kg for 17000.
func (suite *OrderRepositoryIntegrationTestSuite) weighedOrder(sequence int64, status order.Status) *order.Order {
	id, err := order.NewID(sequence)
	suite.Require().NoError(err)

	restored, err := order.RestoreOrder(
		id,
		kernel.NewUUID(),
		order.ServiceWashFold,
		order.PickupByCourier,
		order.DeliverySelfPickup,
		decimal.NewFromInt(3),
		decimal.NewFromInt(17000),
		status,
		0,
		"",
		order.PaymentUnpaid,
		"",
		"",
		time.Now(),
		time.Now(),
	)
	suite.Require().NoError(err)
	return restored
}

// billedOrderAt creates a CODBilled order whose last update happened at the
// given moment.
func (suite *OrderRepositoryIntegrationTestSuite) billedOrderAt(sequence int64, updatedAt time.Time) *order.Order {
	id, err := order.NewID(sequence)
	suite.Require().NoError(err)

	restored, err := order.RestoreOrder(
		id,
		kernel.NewUUID(),
		order.ServiceWashFold,
		order.PickupByCourier,
		order.DeliverySelfPickup,
		decimal.NewFromInt(3),
		decimal.NewFromInt(17000),
		order.ReadyForPickupOrDelivery,
		0,
		order.PaymentMethodCOD,
		order.PaymentCODBilled,
		"",
		"",
		updatedAt.Add(-time.Hour),
		updatedAt,
	)
	suite.Require().NoError(err)
	return restored
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
