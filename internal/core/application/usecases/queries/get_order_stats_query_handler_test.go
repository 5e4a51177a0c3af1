package queries_test

import (
	"context"
	"testing"
	"time"

	"ordertracker/internal/adapters/out/postgres/orderrepo"
	"ordertracker/internal/core/application/usecases/queries"
	"ordertracker/internal/core/domain/model/kernel"
	"ordertracker/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderStatsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderStatsQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetOrderStatsQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) seedOrders(statuses ...order.Status) {
	now := time.Now().UTC()
	for _, status := range statuses {
		seeded, err := order.RestoreOrder(kernel.NewUUID(), "customer-1", status, now, now)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	}
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	stats, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())

	suite.Require().NoError(err)
	suite.NotNil(stats)
	suite.Empty(stats)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_MixedStatuses_CountsPerStatus() {
	suite.seedOrders(
		order.Created, order.Created, order.Created,
		order.Completed, order.Completed,
		order.Cancelled,
	)

	stats, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())

	suite.Require().NoError(err)
	suite.Equal([]queries.OrderStatusCount{
		{Status: order.Created, Count: 3},
		{Status: order.Completed, Count: 2},
		{Status: order.Cancelled, Count: 1},
	}, stats)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_SingleStatus_OmitsAbsentStatuses() {
	suite.seedOrders(order.Completed, order.Completed)

	stats, err := suite.handler.Handle(context.Background(), queries.NewGetOrderStatsQuery())

	suite.Require().NoError(err)
	suite.Equal([]queries.OrderStatusCount{
		{Status: order.Completed, Count: 2},
	}, stats)
}

func (suite *GetOrderStatsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var invalidQuery queries.GetOrderStatsQuery

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderStatsQuery constructor")
}

func TestGetOrderStatsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderStatsQueryHandlerTestSuite))
}
