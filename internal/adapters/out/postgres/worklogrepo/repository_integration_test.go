package worklogrepo_test

import (
	"context"
	"testing"
	"time"

	"ostrack/internal/adapters/out/postgres/worklogrepo"
	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/model/worklog"
	"ostrack/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ string, _ any) {}

type WorkLogRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *worklogrepo.GormWorkLogRepository
}

func (suite *WorkLogRepositoryTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&worklogrepo.LogEntryDTO{})
	suite.Require().NoError(err)

	suite.repo = worklogrepo.NewGormWorkLogRepository(db, mockAggregateTracker{})
}

func (suite *WorkLogRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *WorkLogRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE work_order_logs").Error
	suite.Require().NoError(err)
}

func (suite *WorkLogRepositoryTestSuite) newEntry(orderNumber, description string) *worklog.Entry {
	entry, err := worklog.NewEntry(orderNumber, kernel.SectorPCP, description, time.Now())
	suite.Require().NoError(err)
	return entry
}

func (suite *WorkLogRepositoryTestSuite) countWithOrderNumber(orderNumber string) int64 {
	var count int64
	err := suite.db.Model(&worklogrepo.LogEntryDTO{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error
	suite.Require().NoError(err)
	return count
}

func (suite *WorkLogRepositoryTestSuite) TestAdd() {
	ctx := context.Background()
	entry := suite.newEntry("1001", "Order created")

	err := suite.repo.Add(ctx, entry)
	suite.Require().NoError(err)

	suite.Equal(int64(1), suite.countWithOrderNumber("1001"))
}

func (suite *WorkLogRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	entry := suite.newEntry("1001", "Order created")
	suite.Require().NoError(suite.repo.Add(ctx, entry))

	err := suite.repo.Delete(ctx, entry.ID())
	suite.Require().NoError(err)
	suite.Zero(suite.countWithOrderNumber("1001"))

	err = suite.repo.Delete(ctx, entry.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WorkLogRepositoryTestSuite) TestDelete_NilID() {
	err := suite.repo.Delete(context.Background(), uuid.Nil)
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *WorkLogRepositoryTestSuite) TestRenameOrderNumber() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newEntry("1001", "Order created")))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newEntry("1001", "Production reported")))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newEntry("2002", "Order created")))

	renamed, err := suite.repo.RenameOrderNumber(ctx, "1001", "3003")
	suite.Require().NoError(err)
	suite.Equal(int64(2), renamed)

	suite.Zero(suite.countWithOrderNumber("1001"))
	suite.Equal(int64(2), suite.countWithOrderNumber("3003"))
	suite.Equal(int64(1), suite.countWithOrderNumber("2002"))
}

func (suite *WorkLogRepositoryTestSuite) TestRenameOrderNumber_NoMatches() {
	renamed, err := suite.repo.RenameOrderNumber(context.Background(), "9999", "1001")
	suite.Require().NoError(err)
	suite.Zero(renamed)
}

func (suite *WorkLogRepositoryTestSuite) TestRenameOrderNumber_EmptyNewDetaches() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newEntry("1001", "Order created")))

	renamed, err := suite.repo.RenameOrderNumber(ctx, "1001", "")
	suite.Require().NoError(err)
	suite.Equal(int64(1), renamed)

	var detached int64
	err = suite.db.Model(&worklogrepo.LogEntryDTO{}).
		Where("order_number IS NULL").
		Count(&detached).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), detached)
}

func TestWorkLogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkLogRepositoryTestSuite))
}
