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

type SearchOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.SearchOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *SearchOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewSearchOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SearchOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

// seedOrder persists an order with a controlled status and creation time so
// that filter and ordering assertions are deterministic.
func (suite *SearchOrdersQueryHandlerTestSuite) seedOrder(
	customerID string, status order.Status, createdAt time.Time,
) *order.Order {
	seeded, err := order.RestoreOrder(kernel.NewUUID(), customerID, status, createdAt, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), seeded))
	return seeded
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewSearchOrdersQuery(nil, nil, nil, 0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Items)
	suite.Equal(int64(0), result.TotalElements)
	suite.Equal(0, result.TotalPages)
	suite.Equal(0, result.Page)
	suite.Equal(20, result.Size)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_Pagination_SplitsAndRoundsUp() {
	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	first := suite.seedOrder("customer-1", order.Created, base)
	second := suite.seedOrder("customer-2", order.Created, base.Add(time.Minute))
	third := suite.seedOrder("customer-3", order.Created, base.Add(2*time.Minute))

	query, err := queries.NewSearchOrdersQuery(nil, nil, nil, 0, 2)
	suite.Require().NoError(err)

	firstPage, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(firstPage.Items, 2)
	suite.Equal(int64(3), firstPage.TotalElements)
	suite.Equal(2, firstPage.TotalPages)
	suite.True(first.ID().IsEqual(firstPage.Items[0].ID), "oldest order comes first")
	suite.True(second.ID().IsEqual(firstPage.Items[1].ID))

	query, err = queries.NewSearchOrdersQuery(nil, nil, nil, 1, 2)
	suite.Require().NoError(err)

	secondPage, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(secondPage.Items, 1)
	suite.Equal(int64(3), secondPage.TotalElements)
	suite.Equal(2, secondPage.TotalPages)
	suite.True(third.ID().IsEqual(secondPage.Items[0].ID))
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_PageBeyondResults_ReturnsEmptyItems() {
	base := time.Now().UTC().Truncate(time.Second)
	suite.seedOrder("customer-1", order.Created, base)

	query, err := queries.NewSearchOrdersQuery(nil, nil, nil, 5, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Items)
	suite.Equal(int64(1), result.TotalElements)
	suite.Equal(1, result.TotalPages)
	suite.Equal(5, result.Page)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_StatusFilter_NarrowsResults() {
	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	suite.seedOrder("customer-1", order.Created, base)
	completed := suite.seedOrder("customer-2", order.Completed, base.Add(time.Minute))
	suite.seedOrder("customer-3", order.Cancelled, base.Add(2*time.Minute))

	status := order.Completed
	query, err := queries.NewSearchOrdersQuery(&status, nil, nil, 0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal(int64(1), result.TotalElements)
	suite.Equal(1, result.TotalPages)
	suite.True(completed.ID().IsEqual(result.Items[0].ID))
	suite.Equal(order.Completed, result.Items[0].Status)
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_TimeWindowFilter_BoundsAreInclusive() {
	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	suite.seedOrder("customer-1", order.Created, base)
	middle := suite.seedOrder("customer-2", order.Created, base.Add(time.Minute))
	suite.seedOrder("customer-3", order.Created, base.Add(2*time.Minute))

	from := middle.CreatedAt()
	to := middle.CreatedAt()
	query, err := queries.NewSearchOrdersQuery(nil, &from, &to, 0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.True(middle.ID().IsEqual(result.Items[0].ID))
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_ConjunctiveFilters_AllMustMatch() {
	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	suite.seedOrder("customer-1", order.Created, base)
	match := suite.seedOrder("customer-2", order.Completed, base.Add(time.Minute))
	// Same window, wrong status.
	suite.seedOrder("customer-3", order.Cancelled, base.Add(time.Minute))
	// Right status, outside the window.
	suite.seedOrder("customer-4", order.Completed, base.Add(30*time.Minute))

	status := order.Completed
	from := base
	to := base.Add(2 * time.Minute)
	query, err := queries.NewSearchOrdersQuery(&status, &from, &to, 0, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal(int64(1), result.TotalElements)
	suite.True(match.ID().IsEqual(result.Items[0].ID))
}

func (suite *SearchOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	var invalidQuery queries.SearchOrdersQuery

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewSearchOrdersQuery constructor")
}

func TestSearchOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SearchOrdersQueryHandlerTestSuite))
}
