package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cleanly/internal/core/application/usecases/commands"
	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/notification"
	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/core/domain/model/user"
	"cleanly/internal/core/domain/services"
	"cleanly/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared testify mocks for the command handler tests. One mock per port; a
// single MockUoW satisfies every narrow unit of work interface so each test
// wires only the expectations its handler actually exercises.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) SetComplaintIfEmpty(
	ctx context.Context, id order.ID, description, imageURL string, now time.Time,
) error {
	args := m.Called(ctx, id, description, imageURL, now)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllBilledBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockPriceListRepository struct{ mock.Mock }

func (m *MockPriceListRepository) GetAll(ctx context.Context) (services.PriceList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(services.PriceList), args.Error(1)
}

func (m *MockPriceListRepository) Upsert(ctx context.Context, key string, price decimal.Decimal) error {
	args := m.Called(ctx, key, price)
	return args.Error(0)
}

type MockSequenceGenerator struct{ mock.Mock }

func (m *MockSequenceGenerator) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationEmitter struct{ mock.Mock }

func (m *MockNotificationEmitter) Emit(
	ctx context.Context, userID kernel.UUID, orderID order.ID, title, message string,
) error {
	args := m.Called(ctx, userID, orderID, title, message)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) PriceListRepository() ports.PriceListRepository {
	args := m.Called()
	return args.Get(0).(ports.PriceListRepository)
}

func (m *MockUoW) SequenceGenerator() ports.SequenceGenerator {
	args := m.Called()
	return args.Get(0).(ports.SequenceGenerator)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockWeighingUoWFactory struct{ mock.Mock }

func (m *MockWeighingUoWFactory) Create() commands.WeighingUoW {
	args := m.Called()
	return args.Get(0).(commands.WeighingUoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hashed, plain string) error {
	args := m.Called(hashed, plain)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testOrderID(t *testing.T) order.ID {
	t.Helper()
	id, err := order.NewID(42)
	require.NoError(t, err)
	return id
}

// storedOrder restores an order in the given lifecycle stage and payment
// state, as a repository Get would return it.
func storedOrder(t *testing.T, status order.Status, paymentStatus order.PaymentStatus) *order.Order {
	t.Helper()
	aggregate, err := order.RestoreOrder(
		testOrderID(t),
		kernel.NewUUID(),
		order.ServiceWashFold,
		order.PickupByCourier,
		order.DeliverySelfPickup,
		decimal.NewFromInt(3),
		decimal.NewFromInt(17000),
		status,
		0,
		"",
		paymentStatus,
		"",
		"",
		time.Now(),
		time.Now(),
	)
	require.NoError(t, err)
	return aggregate
}
