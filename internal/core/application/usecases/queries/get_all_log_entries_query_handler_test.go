package queries_test

import (
	"context"
	"testing"
	"time"

	"ostrack/internal/adapters/out/postgres/worklogrepo"
	"ostrack/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type LogEntriesQueryHandlersTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	allHandler queries.GetAllLogEntriesQueryHandler
	forHandler queries.GetWorkOrderLogEntriesQueryHandler
}

func (suite *LogEntriesQueryHandlersTestSuite) SetupSuite() {
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

	suite.allHandler = queries.NewGetAllLogEntriesQueryHandler(db)
	suite.forHandler = queries.NewGetWorkOrderLogEntriesQueryHandler(db)
}

func (suite *LogEntriesQueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *LogEntriesQueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE work_order_logs CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *LogEntriesQueryHandlersTestSuite) seedEntry(
	orderNumber, description string, date time.Time,
) {
	var ref *string
	if orderNumber != "" {
		ref = &orderNumber
	}
	dto := worklogrepo.LogEntryDTO{
		ID:          uuid.New(),
		OrderNumber: ref,
		Sector:      "Electrical",
		Description: description,
		Date:        date,
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
}

func (suite *LogEntriesQueryHandlersTestSuite) TestGetAll_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.allHandler.Handle(context.Background(), queries.NewGetAllLogEntriesQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *LogEntriesQueryHandlersTestSuite) TestGetAll_ReturnsNewestFirst() {
	base := time.Now().UTC().Truncate(time.Millisecond)
	suite.seedEntry("1001", "Order created", base)
	suite.seedEntry("1001", "Production reported by Alice: 48 good, 2 defective", base.Add(time.Hour))
	suite.seedEntry("", "Entry for a deleted order", base.Add(2*time.Hour))

	result, err := suite.allHandler.Handle(context.Background(), queries.NewGetAllLogEntriesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Entry for a deleted order", result[0].Description)
	suite.Empty(result[0].OrderNumber)
	suite.Equal("Order created", result[2].Description)
}

func (suite *LogEntriesQueryHandlersTestSuite) TestGetForOrder_ReturnsOnlyThatOrder() {
	base := time.Now().UTC().Truncate(time.Millisecond)
	suite.seedEntry("1001", "Order created", base)
	suite.seedEntry("1002", "Order created", base.Add(time.Minute))
	suite.seedEntry("1001", "Order finalized", base.Add(time.Hour))

	query, err := queries.NewGetWorkOrderLogEntriesQuery("1001")
	suite.Require().NoError(err)

	result, err := suite.forHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Order finalized", result[0].Description)
	suite.Equal("1001", result[0].OrderNumber)
}

func (suite *LogEntriesQueryHandlersTestSuite) TestGetForOrder_UnknownOrder_ReturnsEmptySlice() {
	query, err := queries.NewGetWorkOrderLogEntriesQuery("9999")
	suite.Require().NoError(err)

	result, err := suite.forHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestLogEntriesQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(LogEntriesQueryHandlersTestSuite))
}
