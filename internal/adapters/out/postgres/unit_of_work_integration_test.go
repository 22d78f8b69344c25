package postgres_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/adapters/out/postgres/userrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that dual writes to the order and
// partner aggregates commit and roll back as one transaction.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&partnerrepo.PartnerDTO{},
		&userrepo.UserDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, partners, users").Error)

	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_DualWrite_PersistsBothAggregates() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder()
	testPartner := suite.createAvailablePartner()
	suite.seed(testOrder, testPartner)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testPartner.TakeOrder(testOrder.ID()))
	suite.Require().NoError(testOrder.Assign(testPartner.ID()))

	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.PartnerRepository().Update(ctx, testPartner))
	suite.Require().NoError(uow.Commit(ctx))

	persistedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Assigned, persistedOrder.Status())
	suite.Require().NotNil(persistedOrder.Partner())
	suite.True(persistedOrder.Partner().IsEqual(testPartner.ID()))

	persistedPartner, err := suite.factory.Create().PartnerRepository().Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal(partner.OnDelivery, persistedPartner.Status())
	suite.True(persistedPartner.HasOrder(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DualWrite_LeavesBothAggregatesUntouched() {
	ctx := context.Background()

	testOrder := suite.createPendingOrder()
	testPartner := suite.createAvailablePartner()
	suite.seed(testOrder, testPartner)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(testPartner.TakeOrder(testOrder.ID()))
	suite.Require().NoError(testOrder.Assign(testPartner.ID()))

	suite.Require().NoError(uow.OrderRepository().Update(ctx, testOrder))
	suite.Require().NoError(uow.PartnerRepository().Update(ctx, testPartner))
	suite.Require().NoError(uow.Rollback(ctx))

	persistedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Pending, persistedOrder.Status())
	suite.Nil(persistedOrder.Partner())

	persistedPartner, err := suite.factory.Create().PartnerRepository().Get(ctx, testPartner.ID())
	suite.Require().NoError(err)
	suite.Equal(partner.Available, persistedPartner.Status())
	suite.Empty(persistedPartner.AssignedOrders())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_CalledTwice_KeepsSingleTransaction() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) seed(testOrder *order.Order, testPartner *partner.Partner) {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.PartnerRepository().Add(ctx, testPartner))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) createPendingOrder() *order.Order {
	pickup, err := kernel.NewGeoPoint(77.5946, 12.9716)
	suite.Require().NoError(err)
	drop, err := kernel.NewGeoPoint(77.6101, 12.9352)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Customer:        "Ravi Kumar",
		CustomerPhone:   "9876543210",
		PickupAddress:   "12 MG Road",
		DeliveryAddress: "48 Residency Road",
		PickupPoint:     pickup,
		DeliveryPoint:   drop,
		Items:           []string{"2x biryani", "1x lassi"},
	})
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createAvailablePartner() *partner.Partner {
	location, err := kernel.NewGeoPoint(77.6, 12.97)
	suite.Require().NoError(err)

	testPartner, err := partner.NewPartner(kernel.NewUUID(), "Priya Sharma", "priya@dispatch.test", "9876543210", location)
	suite.Require().NoError(err)
	return testPartner
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
