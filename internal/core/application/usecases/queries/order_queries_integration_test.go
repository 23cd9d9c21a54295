package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "ordermanagement/internal/adapters/out/postgres"
	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.ID, any) {}

type OrderQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	now       time.Time
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
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

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) store(o *order.Order, err error) *order.Order {
	suite.Require().NoError(err)
	stored, err := suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return stored
}

func (suite *OrderQueriesTestSuite) update(o *order.Order, err error) *order.Order {
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))
	return o
}

func (suite *OrderQueriesTestSuite) TestGetOrder_Found() {
	start := suite.now.Add(-2 * time.Hour)
	stored := suite.store(order.StartOrder(kernel.MustNewID(1), kernel.MustNewID(2), start))

	query, err := queries.NewGetOrderQuery(stored.ID().Int64())
	suite.Require().NoError(err)

	result, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(stored.ID().Int64(), result.ID)
	suite.Equal(int64(1), result.UserID)
	suite.Equal(int64(2), result.CarID)
	suite.Require().NotNil(result.StartDate)
	suite.True(start.Equal(*result.StartDate))
	suite.Nil(result.EndDate)
	suite.False(result.Canceled)
	suite.Nil(result.BillID)
}

func (suite *OrderQueriesTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(1500)
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), "1500")
}

func (suite *OrderQueriesTestSuite) TestListOrders_EmptyDatabase_ReturnsEmptySlice() {
	result, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), queries.NewListAllOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesTestSuite) TestListOrders_Filters() {
	suite.store(order.StartOrder(kernel.MustNewID(1), kernel.MustNewID(10), suite.now))
	suite.store(order.StartOrder(kernel.MustNewID(1), kernel.MustNewID(20), suite.now))
	suite.store(order.StartOrder(kernel.MustNewID(2), kernel.MustNewID(10), suite.now))

	byUser, err := queries.NewListOrdersByUserQuery(1)
	suite.Require().NoError(err)
	byCar, err := queries.NewListOrdersByCarQuery(10)
	suite.Require().NoError(err)
	unknownCar, err := queries.NewListOrdersByCarQuery(99)
	suite.Require().NoError(err)

	testCases := []struct {
		name  string
		query queries.ListOrdersQuery
		ids   []int64
	}{
		{"all", queries.NewListAllOrdersQuery(), []int64{1, 2, 3}},
		{"by user", byUser, []int64{1, 2}},
		{"by car", byCar, []int64{1, 3}},
		{"unknown car", unknownCar, []int64{}},
	}

	handler := queries.NewListOrdersQueryHandler(suite.db)
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			result, err := handler.Handle(context.Background(), tc.query)
			suite.Require().NoError(err)

			ids := make([]int64, 0, len(result))
			for _, o := range result {
				ids = append(ids, o.ID)
			}
			suite.Equal(tc.ids, ids)
		})
	}
}

func (suite *OrderQueriesTestSuite) TestGetOverdueOrders() {
	// reservation whose planned end passed an hour ago
	overdueStart := suite.now.Add(-5 * time.Hour)
	overdueEnd := suite.now.Add(-time.Hour)
	overdue := suite.store(order.NewReservation(kernel.MustNewID(1), kernel.MustNewID(1),
		overdueStart, overdueEnd, overdueStart.Add(-time.Hour)))

	// reservation still within its range
	suite.store(order.NewReservation(kernel.MustNewID(2), kernel.MustNewID(2),
		suite.now.Add(-time.Hour), suite.now.Add(time.Hour), suite.now.Add(-2*time.Hour)))

	// finished rental
	finished := suite.store(order.StartOrder(kernel.MustNewID(3), kernel.MustNewID(3), suite.now.Add(-4*time.Hour)))
	concluded := suite.update(finished.Conclude(suite.now.Add(-2 * time.Hour)))
	suite.update(concluded.AttachBill(kernel.MustNewID(9)))

	// canceled reservation
	canceled := suite.store(order.NewReservation(kernel.MustNewID(4), kernel.MustNewID(4),
		suite.now.Add(time.Hour), suite.now.Add(2*time.Hour), suite.now))
	suite.update(canceled.Cancel())

	// open rental without planned end
	suite.store(order.StartOrder(kernel.MustNewID(5), kernel.MustNewID(5), suite.now.Add(-10*time.Hour)))

	result, err := queries.NewGetOverdueOrdersQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetOverdueOrdersQuery(suite.now))

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(overdue.ID().Int64(), result[0].ID)
	suite.True(overdueEnd.Equal(*result[0].EndDate))
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
