package userrepo_test

import (
	"context"
	"testing"
	"time"

	"cleanly/internal/adapters/out/postgres/userrepo"
	"cleanly/internal/core/domain/model/kernel"
	"cleanly/internal/core/domain/model/user"
	"cleanly/internal/pkg/errs"

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

// UserRepositoryIntegrationTestSuite verifies user persistence, in particular
// that email uniqueness is enforced by the database constraint.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ValidUser_RoundTrips() {
	ctx := context.Background()

	registered := suite.registeredUser("budi@example.com")
	suite.tracker.On("TrackAggregate", registered.ID().String(), registered).Once()

	suite.Require().NoError(suite.repository.Add(ctx, registered))

	retrieved, err := suite.repository.Get(ctx, registered.ID())
	suite.Require().NoError(err)

	suite.Equal(registered.ID(), retrieved.ID())
	suite.Equal("Budi Santoso", retrieved.FullName())
	suite.Equal("budi@example.com", retrieved.Email())
	suite.Equal(registered.PasswordHash(), retrieved.PasswordHash())
	suite.Equal(user.RoleUser, retrieved.Role())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsConflict() {
	ctx := context.Background()

	first := suite.registeredUser("sama@example.com")
	suite.tracker.On("TrackAggregate", first.ID().String(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.registeredUser("sama@example.com")

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	var alreadyExistsErr *errs.ObjectAlreadyExistsError
	suite.Require().ErrorAs(err, &alreadyExistsErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_ExistingUser_ReturnsUser() {
	ctx := context.Background()

	registered := suite.registeredUser("siti@example.com")
	suite.tracker.On("TrackAggregate", registered.ID().String(), registered).Once()
	suite.Require().NoError(suite.repository.Add(ctx, registered))

	retrieved, err := suite.repository.GetByEmail(ctx, "siti@example.com")
	suite.Require().NoError(err)
	suite.Equal(registered.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail_UnknownEmail_ReturnsNotFoundError() {
	_, err := suite.repository.GetByEmail(context.Background(), "nobody@example.com")
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// registeredUser creates a valid user aggregate with the given email.
func (suite *UserRepositoryIntegrationTestSuite) registeredUser(email string) *user.User {
	registered, err := user.NewUser(
		kernel.NewUUID(),
		"Budi Santoso",
		email,
		"081234567890",
		"Jl. Melati 5",
		"$2a$10$fakedhashforintegrationtestsonly1234567890abcdefghi",
		time.Now(),
	)
	suite.Require().NoError(err)
	return registered
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
