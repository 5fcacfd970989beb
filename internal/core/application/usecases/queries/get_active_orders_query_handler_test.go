package queries_test

import (
	"context"
	"testing"
	"time"

	"thalitrack/internal/adapters/out/postgres/orderrepo"
	"thalitrack/internal/core/application/usecases/queries"
	"thalitrack/internal/core/domain/model/kernel"
	"thalitrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker implements the repository's tracker for test purposes.
// It's a no-op implementation since we don't need aggregate tracking in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) mustPhone(number string) kernel.Phone {
	phone, err := kernel.NewPhone(number)
	suite.Require().NoError(err)
	return phone
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) addRegularOrder(
	name string, thaliCount int, createdAt time.Time,
) *order.Order {
	aggregate, err := order.NewRegularOrder(
		kernel.NewUUID(), name, suite.mustPhone("9876543210"), thaliCount, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_CompletedOrdersAreExcluded() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	pending := suite.addRegularOrder("Ravi Kumar", 10, now)

	fullyDelivered := suite.addRegularOrder("Sunita Devi", 5, now.Add(time.Minute))
	completed, err := fullyDelivered.RecordDelivery(5, "Sunil", "", now.Add(2*time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(ctx, completed))

	query := queries.NewGetActiveOrdersQuery()
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(pending.ID(), result[0].ID)
	suite.Equal("Ravi Kumar", result[0].Name)
	suite.Equal(10, result[0].RemainingQuantity)
	suite.Equal(order.StatusPending, result[0].Status)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_PartiallyDeliveredOrdersAreIncluded() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	aggregate := suite.addRegularOrder("Ravi Kumar", 10, now)
	partial, err := aggregate.RecordDelivery(4, "Ravi", "", now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(ctx, partial))

	query := queries.NewGetActiveOrdersQuery()
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(6, result[0].RemainingQuantity)
	suite.Equal(order.StatusPartiallyDelivered, result[0].Status)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EventOrdersUseEventName() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	aggregate, err := order.NewEventOrder(
		kernel.NewUUID(), "Sharma Wedding", "Anil Sharma", suite.mustPhone("9123456780"),
		150, now.Add(96*time.Hour), now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query := queries.NewGetActiveOrdersQuery()
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("Sharma Wedding", result[0].Name)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_OrdersAreSortedNewestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	oldest := suite.addRegularOrder("First", 5, base.Add(-2*time.Hour))
	middle := suite.addRegularOrder("Second", 5, base.Add(-time.Hour))
	newest := suite.addRegularOrder("Third", 5, base)

	query := queries.NewGetActiveOrdersQuery()
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(newest.ID(), result[0].ID)
	suite.Equal(middle.ID(), result[1].ID)
	suite.Equal(oldest.ID(), result[2].ID)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	for i := range 20 {
		suite.addRegularOrder("Batch", 5, now.Add(time.Duration(i)*time.Second))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
