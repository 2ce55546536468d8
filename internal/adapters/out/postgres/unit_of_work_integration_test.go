package postgres_test

import (
	"context"
	"testing"
	"time"

	"ostrack/internal/adapters/out/postgres"
	"ostrack/internal/adapters/out/postgres/worklogrepo"
	"ostrack/internal/adapters/out/postgres/workorderrepo"
	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/model/worklog"
	"ostrack/internal/core/domain/model/workorder"
	"ostrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
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

	err = db.AutoMigrate(&workorderrepo.WorkOrderDTO{}, &worklogrepo.LogEntryDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE work_orders, work_order_logs").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) newOrder(orderNumber string) *workorder.WorkOrder {
	routing, err := workorder.NewRouting([]string{"Electrical", "Mechanical"})
	suite.Require().NoError(err)

	order, err := workorder.NewWorkOrder(
		orderNumber,
		workorder.Details{PartName: "Bracket", Quantity: 10},
		workorder.Created,
		kernel.Sector("Electrical"),
		routing,
	)
	suite.Require().NoError(err)
	return order
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsOrderAndLogTogether() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	order := suite.newOrder("1001")
	suite.Require().NoError(uow.WorkOrderRepository().Add(ctx, order))

	entry, err := worklog.NewEntry("1001", kernel.SectorPCP, "Order created", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WorkLogRepository().Add(ctx, entry))

	suite.Require().NoError(uow.Commit(ctx))

	repo := workorderrepo.NewGormWorkOrderRepository(suite.db, noopTracker{})
	loaded, err := repo.Get(ctx, "1001")
	suite.Require().NoError(err)
	suite.Equal("1001", loaded.OrderNumber())

	var logCount int64
	err = suite.db.Model(&worklogrepo.LogEntryDTO{}).Count(&logCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), logCount)
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	order := suite.newOrder("1001")
	suite.Require().NoError(uow.WorkOrderRepository().Add(ctx, order))

	entry, err := worklog.NewEntry("1001", kernel.SectorPCP, "Order created", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WorkLogRepository().Add(ctx, entry))

	suite.Require().NoError(uow.Rollback(ctx))

	repo := workorderrepo.NewGormWorkOrderRepository(suite.db, noopTracker{})
	_, err = repo.Get(ctx, "1001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var logCount int64
	err = suite.db.Model(&worklogrepo.LogEntryDTO{}).Count(&logCount).Error
	suite.Require().NoError(err)
	suite.Zero(logCount)
}

func (suite *UnitOfWorkTestSuite) TestDeleteOrder_KeepsItsLogEntries() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	order := suite.newOrder("1001")
	suite.Require().NoError(uow.WorkOrderRepository().Add(ctx, order))

	created, err := worklog.NewEntry("1001", kernel.SectorPCP, "Order created", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WorkLogRepository().Add(ctx, created))

	reported, err := worklog.NewEntry("1001", kernel.Sector("Electrical"),
		"Production reported by Alice: 9 good, 1 defective", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.WorkLogRepository().Add(ctx, reported))

	suite.Require().NoError(uow.Commit(ctx))

	repo := workorderrepo.NewGormWorkOrderRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Delete(ctx, "1001"))

	_, err = repo.Get(ctx, "1001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var logCount int64
	err = suite.db.Model(&worklogrepo.LogEntryDTO{}).
		Where("order_number = ?", "1001").
		Count(&logCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(2), logCount)
}

func (suite *UnitOfWorkTestSuite) TestCommit_WithoutBeginFails() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ string, _ any) {}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
