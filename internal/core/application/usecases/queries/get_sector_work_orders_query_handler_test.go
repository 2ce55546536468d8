package queries_test

import (
	"context"
	"testing"
	"time"

	"ostrack/internal/adapters/out/postgres/workorderrepo"
	"ostrack/internal/core/application/usecases/queries"
	"ostrack/internal/core/domain/model/kernel"
	"ostrack/internal/core/domain/services"

	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetSectorWorkOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetSectorWorkOrdersQueryHandler
}

func (suite *GetSectorWorkOrdersQueryHandlerTestSuite) SetupSuite() {
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

	assembly := services.AssemblyGroupConfig{
		Member:   kernel.Sector("Assembly"),
		Upstream: []kernel.Sector{"Electrical", "Mechanical"},
	}
	suite.handler = queries.NewGetSectorWorkOrdersQueryHandler(db, assembly)
}

func (suite *GetSectorWorkOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetSectorWorkOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE work_orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetSectorWorkOrdersQueryHandlerTestSuite) seedOrder(
	orderNumber, status, currentSector string, routing []string, createdAt time.Time,
) {
	dto := workorderrepo.WorkOrderDTO{
		OrderNumber:   orderNumber,
		PartName:      "Bracket",
		PartNumber:    "BR-7",
		Quantity:      50,
		Status:        status,
		Routing:       pq.StringArray(routing),
		CurrentSector: currentSector,
		CreatedAt:     createdAt,
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
}

func (suite *GetSectorWorkOrdersQueryHandlerTestSuite) handle(
	caller kernel.Sector, page, limit int,
) queries.Page[queries.WorkOrderResponse] {
	query, err := queries.NewGetSectorWorkOrdersQuery(caller, page, limit)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	return result
}

func (suite *GetSectorWorkOrdersQueryHandlerTestSuite) TestHandle_PCPSeesEverything() {
	base := time.Now().UTC()
	suite.seedOrder("1001", "InProgress", "Electrical", []string{"Electrical", "Test"}, base)
	suite.seedOrder("1002", "Created", "Paint", []string{"Paint"}, base.Add(time.Minute))

	result := suite.handle(kernel.SectorPCP, 1, 10)

	suite.Equal(2, result.Total)
	suite.Len(result.Data, 2)
}

func (suite *GetSectorWorkOrdersQueryHandlerTestSuite) TestHandle_SectorSeesOnlyItsOrders() {
	base := time.Now().UTC()
	suite.seedOrder("1001", "InProgress", "Electrical", []string{"Electrical", "Test"}, base)
	suite.seedOrder("1002", "InProgress", "Paint", []string{"Paint"}, base.Add(time.Minute))

	result := suite.handle(kernel.Sector("Paint"), 1, 10)

	suite.Equal(1, result.Total)
	suite.Require().Len(result.Data, 1)
	suite.Equal("1002", result.Data[0].OrderNumber)
}

func (suite *GetSectorWorkOrdersQueryHandlerTestSuite) TestHandle_FinalizedVisibleToRoutedSectors() {
	base := time.Now().UTC()
	suite.seedOrder("1001", "Finalized", "", []string{"Electrical", "Test"}, base)

	result := suite.handle(kernel.Sector("Test"), 1, 10)
	suite.Equal(1, result.Total)

	result = suite.handle(kernel.Sector("Paint"), 1, 10)
	suite.Equal(0, result.Total)
}

func (suite *GetSectorWorkOrdersQueryHandlerTestSuite) TestHandle_AssemblySeesUpstreamOrders() {
	base := time.Now().UTC()
	suite.seedOrder("1001", "InProgress", "Electrical", []string{"Electrical", "Assembly"}, base)
	suite.seedOrder("1002", "InProgress", "Paint", []string{"Paint"}, base.Add(time.Minute))

	result := suite.handle(kernel.Sector("Assembly"), 1, 10)

	suite.Equal(1, result.Total)
	suite.Require().Len(result.Data, 1)
	suite.Equal("1001", result.Data[0].OrderNumber)
}

func (suite *GetSectorWorkOrdersQueryHandlerTestSuite) TestHandle_PaginationCountsVisibleSet() {
	base := time.Now().UTC()
	for i, orderNumber := range []string{"1001", "1002", "1003"} {
		suite.seedOrder(orderNumber, "InProgress", "Paint", []string{"Paint"}, base.Add(time.Duration(i)*time.Minute))
	}
	suite.seedOrder("2001", "InProgress", "Electrical", []string{"Electrical"}, base.Add(time.Hour))

	result := suite.handle(kernel.Sector("Paint"), 2, 2)

	suite.Equal(3, result.Total)
	suite.Equal(2, result.TotalPages)
	suite.Equal(2, result.Page)
	suite.Len(result.Data, 1)
}

func TestGetSectorWorkOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetSectorWorkOrdersQueryHandlerTestSuite))
}
