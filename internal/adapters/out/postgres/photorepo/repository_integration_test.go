package photorepo_test

import (
	"context"
	"testing"
	"time"

	"printmarket/internal/adapters/out/postgres/photorepo"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PhotoRepositoryIntegrationTestSuite provides integration tests for
// PhotoRepository using PostgreSQL containers, focusing on the counting and
// retention queries that gate order completion and archival.
type PhotoRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *photorepo.GormPhotoRepository
}

func (suite *PhotoRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&photorepo.PhotoDTO{}))
}

func (suite *PhotoRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE photos").Error)

	suite.repository = photorepo.NewGormPhotoRepository(suite.db)
}

func (suite *PhotoRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PhotoRepositoryIntegrationTestSuite) TestGetByOrder_OldestFirst() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	orderID := kernel.NewUUID()
	first := suite.createTestPhoto(orderID, order.PhotoTypeBefore, now.Add(-time.Hour))
	second := suite.createTestPhoto(orderID, order.PhotoTypeAfter, now)
	suite.createTestPhoto(kernel.NewUUID(), order.PhotoTypeAfter, now)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	found, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)

	suite.Require().Len(found, 2)
	suite.Equal(first.ID(), found[0].ID())
	suite.Equal(order.PhotoTypeBefore, found[0].Type())
	suite.Equal(second.ID(), found[1].ID())
	suite.Equal(first.StorageRef(), found[0].StorageRef())
}

func (suite *PhotoRepositoryIntegrationTestSuite) TestCountByOrderAndType_SkipsArchivedAndOtherTypes() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	orderID := kernel.NewUUID()
	after := suite.createTestPhoto(orderID, order.PhotoTypeAfter, now)
	before := suite.createTestPhoto(orderID, order.PhotoTypeBefore, now)
	archived := suite.createTestPhoto(orderID, order.PhotoTypeAfter, now)
	archived.Archive()

	suite.Require().NoError(suite.repository.Add(ctx, after))
	suite.Require().NoError(suite.repository.Add(ctx, before))
	suite.Require().NoError(suite.repository.Add(ctx, archived))

	count, err := suite.repository.CountByOrderAndType(ctx, orderID, order.PhotoTypeAfter)
	suite.Require().NoError(err)

	suite.Equal(1, count)
}

func (suite *PhotoRepositoryIntegrationTestSuite) TestGetUploadedBefore_HonorsCutoffAndArchiveFlag() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	old := suite.createTestPhoto(kernel.NewUUID(), order.PhotoTypeAfter, now.Add(-100*24*time.Hour))
	fresh := suite.createTestPhoto(kernel.NewUUID(), order.PhotoTypeAfter, now)
	alreadyArchived := suite.createTestPhoto(kernel.NewUUID(), order.PhotoTypeAfter, now.Add(-100*24*time.Hour))
	alreadyArchived.Archive()

	suite.Require().NoError(suite.repository.Add(ctx, old))
	suite.Require().NoError(suite.repository.Add(ctx, fresh))
	suite.Require().NoError(suite.repository.Add(ctx, alreadyArchived))

	found, err := suite.repository.GetUploadedBefore(ctx, now.Add(-90*24*time.Hour))
	suite.Require().NoError(err)

	suite.Require().Len(found, 1)
	suite.Equal(old.ID(), found[0].ID())
}

func (suite *PhotoRepositoryIntegrationTestSuite) TestUpdate_PersistsArchiveFlag() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	orderID := kernel.NewUUID()
	photo := suite.createTestPhoto(orderID, order.PhotoTypeAfter, now)
	suite.Require().NoError(suite.repository.Add(ctx, photo))

	photo.Archive()
	suite.Require().NoError(suite.repository.Update(ctx, photo))

	found, err := suite.repository.GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(found[0].Archived())
}

func (suite *PhotoRepositoryIntegrationTestSuite) createTestPhoto(
	orderID kernel.UUID,
	photoType order.PhotoType,
	uploadedAt time.Time,
) *order.Photo {
	photo, err := order.NewPhoto(
		kernel.NewUUID(),
		orderID,
		kernel.NewUUID(),
		photoType,
		"photos/"+kernel.NewUUID().String(),
		"",
		uploadedAt,
	)
	suite.Require().NoError(err)
	return photo
}

func TestPhotoRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PhotoRepositoryIntegrationTestSuite))
}
