package participantrepo_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"printmarket/internal/adapters/out/postgres/participantrepo"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/participant"
	"printmarket/internal/pkg/errs"

	_ "github.com/lib/pq"
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

// ParticipantRepositoryIntegrationTestSuite provides integration tests for
// ParticipantRepository using PostgreSQL containers.
type ParticipantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *participantrepo.GormParticipantRepository
	tracker    *MockAggregateTracker
}

func (suite *ParticipantRepositoryIntegrationTestSuite) SetupSuite() {
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

	// Open through lib/pq so driver errors carry postgres error codes the
	// repository maps.
	sqlDB, err := sql.Open("postgres", connStr)
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&participantrepo.ParticipantDTO{},
		&participantrepo.MaterialDTO{},
		&participantrepo.PrinterDTO{},
	))
}

func (suite *ParticipantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE participants CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = participantrepo.NewGormParticipantRepository(suite.db, suite.tracker)
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestAdd_ProducerWithCapabilities_RoundTrips() {
	ctx := context.Background()

	producer := suite.createTestProducer("maker@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, producer))

	loaded, err := suite.repository.Get(ctx, producer.ID())
	suite.Require().NoError(err)

	suite.Equal(producer.ID(), loaded.ID())
	suite.Equal("maker@example.com", loaded.Email())
	suite.Equal(participant.RoleProducer, loaded.Role())
	suite.ElementsMatch([]string{"PLA", "PETG"}, loaded.MaterialsSupported())
	suite.Require().Len(loaded.Printers(), 1)
	suite.InDelta(220, loaded.Printers()[0].BuildVolume().X(), 1e-9)
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsInvalidValue() {
	ctx := context.Background()

	first := suite.createTestProducer("dup@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestProducer("dup@example.com")
	err := suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestUpdate_CountersAndCapabilities_Persist() {
	ctx := context.Background()

	producer := suite.createTestProducer("update@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, producer))

	producer.RecordConfirmedOrder()
	suite.Require().NoError(producer.SupportMaterial("ABS"))
	suite.Require().NoError(suite.repository.Update(ctx, producer))

	loaded, err := suite.repository.Get(ctx, producer.ID())
	suite.Require().NoError(err)

	suite.Equal(1, loaded.CompletedOrders())
	suite.Contains(loaded.MaterialsSupported(), "ABS")
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestGetByEmail_Found() {
	ctx := context.Background()

	producer := suite.createTestProducer("lookup@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, producer))

	loaded, err := suite.repository.GetByEmail(ctx, "lookup@example.com")
	suite.Require().NoError(err)
	suite.Equal(producer.ID(), loaded.ID())
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestGetAllProducers_ExcludesCustomers() {
	ctx := context.Background()
	now := time.Now().UTC()

	producer := suite.createTestProducer("producer@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, producer))

	customer, err := participant.NewParticipant(kernel.NewUUID(), "customer@example.com", "Customer", participant.RoleCustomer, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, customer))

	producers, err := suite.repository.GetAllProducers(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(producers, 1)
	suite.Equal(producer.ID(), producers[0].ID())
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestGetAllAdmins_ExcludesOtherRoles() {
	ctx := context.Background()
	now := time.Now().UTC()

	admin, err := participant.NewParticipant(kernel.NewUUID(), "admin@example.com", "Admin", participant.RoleAdmin, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, admin))

	producer := suite.createTestProducer("producer2@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, producer))

	admins, err := suite.repository.GetAllAdmins(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(admins, 1)
	suite.Equal(admin.ID(), admins[0].ID())
	suite.Equal(participant.RoleAdmin, admins[0].Role())
}

func (suite *ParticipantRepositoryIntegrationTestSuite) createTestProducer(email string) *participant.Participant {
	now := time.Now().UTC()

	producer, err := participant.NewParticipant(kernel.NewUUID(), email, "Maker", participant.RoleProducer, now)
	suite.Require().NoError(err)

	suite.Require().NoError(producer.SupportMaterial("PLA"))
	suite.Require().NoError(producer.SupportMaterial("PETG"))

	buildVolume, err := kernel.NewDimensions(220, 220, 250)
	suite.Require().NoError(err)
	suite.Require().NoError(producer.AddPrinter("Prusa MK4", buildVolume))

	return producer
}

func TestParticipantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParticipantRepositoryIntegrationTestSuite))
}
