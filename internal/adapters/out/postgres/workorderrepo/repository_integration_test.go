package workorderrepo_test

import (
	"context"
	"testing"
	"time"

	"ostrack/internal/adapters/out/postgres/workorderrepo"
	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/model/workorder"
	"ostrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ string, _ any) {}

type WorkOrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *workorderrepo.GormWorkOrderRepository
}

func (suite *WorkOrderRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&workorderrepo.WorkOrderDTO{})
	suite.Require().NoError(err)

	suite.repo = workorderrepo.NewGormWorkOrderRepository(db, mockAggregateTracker{})
}

func (suite *WorkOrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *WorkOrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE work_orders").Error
	suite.Require().NoError(err)
}

func (suite *WorkOrderRepositoryTestSuite) newOrder(orderNumber string, status workorder.Status) *workorder.WorkOrder {
	routing, err := workorder.NewRouting([]string{"Electrical", "Mechanical", "Test"})
	suite.Require().NoError(err)

	order, err := workorder.RestoreWorkOrder(
		orderNumber,
		workorder.Details{
			PartName:   "Bracket",
			PartNumber: "BR-7",
			Quantity:   50,
			Priority:   "normal",
			CreatedAt:  time.Now().UTC().Truncate(time.Millisecond),
		},
		status,
		routing,
		kernel.Sector("Electrical"),
		kernel.Sector(""),
		0, 0, "",
	)
	suite.Require().NoError(err)
	return order
}

func (suite *WorkOrderRepositoryTestSuite) TestAddAndGet() {
	ctx := context.Background()
	order := suite.newOrder("1001", workorder.Created)

	err := suite.repo.Add(ctx, order)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, "1001")
	suite.Require().NoError(err)
	suite.Equal("1001", loaded.OrderNumber())
	suite.Equal(workorder.Created, loaded.Status())
	suite.Equal("Bracket", loaded.Details().PartName)
	suite.Equal([]string{"Electrical", "Mechanical", "Test"}, loaded.Routing().Strings())
	suite.Equal(kernel.Sector("Electrical"), loaded.CurrentSector())
}

func (suite *WorkOrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), "9999")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WorkOrderRepositoryTestSuite) TestUpdate_PersistsClearedFields() {
	ctx := context.Background()
	order := suite.newOrder("1001", workorder.InProgress)
	err := suite.repo.Add(ctx, order)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, "1001")
	suite.Require().NoError(err)
	err = loaded.ReportProduction(kernel.Sector("Electrical"), 48, 2, "Silva")
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, loaded)
	suite.Require().NoError(err)

	reviewed, err := suite.repo.Get(ctx, "1001")
	suite.Require().NoError(err)
	suite.Equal(workorder.PendingReview, reviewed.Status())
	suite.Equal(kernel.Sector("Electrical"), reviewed.PendingSector())

	err = reviewed.Approve()
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, reviewed)
	suite.Require().NoError(err)

	advanced, err := suite.repo.Get(ctx, "1001")
	suite.Require().NoError(err)
	suite.Equal(workorder.InProgress, advanced.Status())
	suite.Equal(kernel.Sector("Mechanical"), advanced.CurrentSector())
	suite.True(advanced.PendingSector().IsEmpty())
}

func (suite *WorkOrderRepositoryTestSuite) TestUpdate_LostRaceReturnsVersionError() {
	ctx := context.Background()
	order := suite.newOrder("1001", workorder.PendingReview)
	err := suite.repo.Add(ctx, order)
	suite.Require().NoError(err)

	first, err := suite.repo.Get(ctx, "1001")
	suite.Require().NoError(err)
	second, err := suite.repo.Get(ctx, "1001")
	suite.Require().NoError(err)

	first.Finalize()
	err = suite.repo.Update(ctx, first)
	suite.Require().NoError(err)

	second.Finalize()
	err = suite.repo.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *WorkOrderRepositoryTestSuite) TestUpdate_MissingOrderReturnsNotFound() {
	ctx := context.Background()
	order := suite.newOrder("1001", workorder.Created)
	order.Finalize()

	err := suite.repo.Update(ctx, order)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *WorkOrderRepositoryTestSuite) TestUpdate_RenameChangesBusinessKey() {
	ctx := context.Background()
	order := suite.newOrder("1001", workorder.Created)
	err := suite.repo.Add(ctx, order)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, "1001")
	suite.Require().NoError(err)
	err = loaded.Rename("2002")
	suite.Require().NoError(err)
	err = suite.repo.Update(ctx, loaded)
	suite.Require().NoError(err)

	_, err = suite.repo.Get(ctx, "1001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	renamed, err := suite.repo.Get(ctx, "2002")
	suite.Require().NoError(err)
	suite.Equal("2002", renamed.OrderNumber())
}

func (suite *WorkOrderRepositoryTestSuite) TestGetAllInStatus() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("1001", workorder.InProgress)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("1002", workorder.InProgress)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("1003", workorder.Paused)))

	inProgress, err := suite.repo.GetAllInStatus(ctx, workorder.InProgress)
	suite.Require().NoError(err)
	suite.Len(inProgress, 2)

	numbers := make(map[string]bool)
	for _, o := range inProgress {
		numbers[o.OrderNumber()] = true
	}
	suite.True(numbers["1001"])
	suite.True(numbers["1002"])
}

func (suite *WorkOrderRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("1001", workorder.Created)))

	err := suite.repo.Delete(ctx, "1001")
	suite.Require().NoError(err)

	_, err = suite.repo.Get(ctx, "1001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repo.Delete(ctx, "1001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestWorkOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderRepositoryTestSuite))
}
