package queries_test

import (
	"context"
	"testing"
	"time"

	"cleanly/internal/adapters/out/postgres/orderrepo"
	"cleanly/internal/adapters/out/postgres/userrepo"
	"cleanly/internal/core/application/usecases/queries"
	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/core/domain/model/user"
	"cleanly/internal/pkg/errs"
	"cleanly/internal/pkg/passwords"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// nopTracker satisfies the repositories' tracker dependency when seeding.
type nopTracker struct{}

func (nopTracker) TrackAggregate(string, any) {}

// QueriesIntegrationTestSuite exercises the raw-SQL read models against a
// real database, seeded through the write-side repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	orders    *orderrepo.GormOrderRepository
	users     *userrepo.GormUserRepository
	sequence  int64
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}, &orderrepo.OrderDTO{}))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users, orders").Error)
	suite.orders = orderrepo.NewGormOrderRepository(suite.db, nopTracker{})
	suite.users = userrepo.NewGormUserRepository(suite.db, nopTracker{})
	suite.sequence = 0
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) TestLogin_RoundTrip() {
	ctx := context.Background()
	hasher := passwords.NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("rahasia123")
	suite.Require().NoError(err)
	owner := suite.seedUser("ani@example.com", hash)

	handler := queries.NewLoginQueryHandler(suite.db, hasher)

	query, err := queries.NewLoginQuery("ani@example.com", "rahasia123")
	suite.Require().NoError(err)

	profile, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(owner.ID(), profile.ID)
	suite.Equal("Ani Wijaya", profile.FullName)
	suite.Equal(user.RoleUser, profile.Role)

	// Wrong password and unknown email fail identically.
	wrongPassword, err := queries.NewLoginQuery("ani@example.com", "salah")
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, wrongPassword)
	suite.Require().ErrorIs(err, errs.ErrAuthenticationFailed)

	unknownEmail, err := queries.NewLoginQuery("tidak@example.com", "rahasia123")
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, unknownEmail)
	suite.Require().ErrorIs(err, errs.ErrAuthenticationFailed)
}

func (suite *QueriesIntegrationTestSuite) TestGetUserOrders_NewestFirst_OwnOrdersOnly() {
	ctx := context.Background()
	now := time.Now()

	owner := suite.seedUser("budi@example.com", "x")
	other := suite.seedUser("citra@example.com", "x")

	older := suite.seedOrder(owner.ID(), order.Incoming, order.PaymentUnpaid, now.Add(-2*time.Hour), decimal.Zero)
	newer := suite.seedOrder(owner.ID(), order.Incoming, order.PaymentUnpaid, now.Add(-time.Hour), decimal.Zero)
	suite.seedOrder(other.ID(), order.Incoming, order.PaymentUnpaid, now, decimal.Zero)

	handler := queries.NewGetUserOrdersQueryHandler(suite.db)

	query, err := queries.NewGetUserOrdersQuery(owner.ID())
	suite.Require().NoError(err)

	views, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 2)
	suite.Equal(newer.ID().String(), views[0].ID)
	suite.Equal(older.ID().String(), views[1].ID)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrdersByStage_MapsStatusesAndJoinsUser() {
	ctx := context.Background()
	now := time.Now()

	owner := suite.seedUser("dewi@example.com", "x")

	incoming := suite.seedOrder(owner.ID(), order.Incoming, order.PaymentUnpaid, now, decimal.Zero)
	washing := suite.seedOrder(owner.ID(), order.Washing, order.PaymentUnpaid, now, decimal.NewFromInt(17000))
	completed := suite.seedOrder(owner.ID(), order.Completed, order.PaymentPaid, now, decimal.NewFromInt(17000))

	handler := queries.NewGetOrdersByStageQueryHandler(suite.db)

	testCases := []struct {
		stage    string
		expected order.ID
	}{
		{queries.StageIncoming, incoming.ID()},
		{queries.StageOngoing, washing.ID()},
		{queries.StageCompleted, completed.ID()},
	}

	for _, tc := range testCases {
		suite.Run(tc.stage, func() {
			query, err := queries.NewGetOrdersByStageQuery(tc.stage)
			suite.Require().NoError(err)

			views, err := handler.Handle(ctx, query)
			suite.Require().NoError(err)

			suite.Require().Len(views, 1)
			suite.Equal(tc.expected.String(), views[0].ID)
			suite.Equal(owner.ID(), views[0].UserID)
			suite.Equal("Ani Wijaya", views[0].UserFullName)
		})
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetComplaints_OnlyOrdersWithComplaints() {
	ctx := context.Background()
	now := time.Now()

	owner := suite.seedUser("eka@example.com", "x")

	complained := suite.seedOrder(owner.ID(), order.Completed, order.PaymentPaid, now, decimal.NewFromInt(17000))
	suite.Require().NoError(suite.orders.SetComplaintIfEmpty(
		ctx, complained.ID(), "Kaos hilang", "", now,
	))
	suite.seedOrder(owner.ID(), order.Completed, order.PaymentPaid, now, decimal.NewFromInt(12000))

	handler := queries.NewGetComplaintsQueryHandler(suite.db)

	views, err := handler.Handle(ctx, queries.NewGetComplaintsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(views, 1)
	suite.Equal(complained.ID().String(), views[0].ID)
	suite.Equal("Kaos hilang", views[0].ComplaintDescription)
}

func (suite *QueriesIntegrationTestSuite) TestGetRevenue_DailySumsTodaysCompletedOrders() {
	ctx := context.Background()
	now := time.Now()

	owner := suite.seedUser("fitri@example.com", "x")

	// Two completed today: 25 + 35 = 60.
	suite.seedOrder(owner.ID(), order.Completed, order.PaymentPaid, now, decimal.NewFromInt(25))
	suite.seedOrder(owner.ID(), order.Completed, order.PaymentPaid, now, decimal.NewFromInt(35))
	// Completed yesterday: outside the daily window.
	suite.seedOrder(owner.ID(), order.Completed, order.PaymentPaid, now.AddDate(0, 0, -1), decimal.NewFromInt(1000))
	// Not completed: never counts.
	suite.seedOrder(owner.ID(), order.Washing, order.PaymentUnpaid, now, decimal.NewFromInt(500))

	handler := queries.NewGetRevenueQueryHandler(suite.db)

	query, err := queries.NewGetRevenueQuery(queries.RevenueFilterDaily)
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(response.Total.Equal(decimal.NewFromInt(60)), "got %s", response.Total)

	// The all-time window counts everything completed.
	allQuery, err := queries.NewGetRevenueQuery(queries.RevenueFilterAll)
	suite.Require().NoError(err)

	allResponse, err := handler.Handle(ctx, allQuery)
	suite.Require().NoError(err)
	suite.True(allResponse.Total.Equal(decimal.NewFromInt(1060)), "got %s", allResponse.Total)
}

func (suite *QueriesIntegrationTestSuite) TestGetRevenue_YearlyDetailGroupsByMonthAndOmitsEmptyMonths() {
	ctx := context.Background()
	now := time.Now()

	owner := suite.seedUser("gita@example.com", "x")

	seeded := []struct {
		completedAt time.Time
		price       int64
	}{
		{time.Date(now.Year(), time.January, 15, 12, 0, 0, 0, now.Location()), 100},
		{time.Date(now.Year(), time.January, 20, 12, 0, 0, 0, now.Location()), 50},
		{now, 70},
	}

	expectedByMonth := map[time.Month]decimal.Decimal{}
	expectedTotal := decimal.Zero
	for _, seed := range seeded {
		suite.seedOrder(owner.ID(), order.Completed, order.PaymentPaid, seed.completedAt, decimal.NewFromInt(seed.price))
		month := seed.completedAt.Month()
		expectedByMonth[month] = expectedByMonth[month].Add(decimal.NewFromInt(seed.price))
		expectedTotal = expectedTotal.Add(decimal.NewFromInt(seed.price))
	}

	handler := queries.NewGetRevenueQueryHandler(suite.db)

	query, err := queries.NewGetRevenueQuery(queries.RevenueFilterYearlyDetail)
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(response.Total.Equal(expectedTotal), "got %s", response.Total)
	suite.Require().Len(response.Months, len(expectedByMonth))

	previous := time.Month(0)
	for _, monthView := range response.Months {
		suite.Greater(int(monthView.Month), int(previous), "months must be ascending")
		previous = monthView.Month

		expected, ok := expectedByMonth[monthView.Month]
		suite.Require().True(ok, "unexpected month %s in detail", monthView.Month)
		suite.True(monthView.Total.Equal(expected), "month %s: got %s", monthView.Month, monthView.Total)
	}
}

// seedUser persists a user; every seeded profile shares the same display name
// so the join assertions stay simple.
func (suite *QueriesIntegrationTestSuite) seedUser(email, passwordHash string) *user.User {
	registered, err := user.NewUser(
		kernel.NewUUID(),
		"Ani Wijaya",
		email,
		"081200000000",
		"Jl. Mawar 1",
		passwordHash,
		time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.users.Add(context.Background(), registered))
	return registered
}

// seedOrder persists an order whose updated_at is pinned to the given moment.
func (suite *QueriesIntegrationTestSuite) seedOrder(
	ownerID kernel.UUID,
	status order.Status,
	paymentStatus order.PaymentStatus,
	updatedAt time.Time,
	price decimal.Decimal,
) *order.Order {
	suite.sequence++

	id, err := order.NewID(suite.sequence)
	suite.Require().NoError(err)

	weight := decimal.Zero
	if price.IsPositive() {
		weight = decimal.NewFromInt(3)
	}

	seeded, err := order.RestoreOrder(
		id,
		ownerID,
		order.ServiceWashFold,
		order.PickupByCourier,
		order.DeliverySelfPickup,
		weight,
		price,
		status,
		0,
		"",
		paymentStatus,
		"",
		"",
		updatedAt.Add(-time.Minute),
		updatedAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), seeded))
	return seeded
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
