package queries_test

import (
	"context"
	"time"

	"lockerfleet/internal/adapters/out/postgres/cabinetrepo"
	"lockerfleet/internal/adapters/out/postgres/classifierrepo"
	"lockerfleet/internal/adapters/out/postgres/deliveryrepo"
	"lockerfleet/internal/adapters/out/postgres/lockerrepo"
	"lockerfleet/internal/adapters/out/postgres/routerepo"
	"lockerfleet/internal/adapters/out/postgres/timeslotrepo"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PostgresQuerySuite boots one throwaway database per suite and migrates
// the full fleet schema into it. Query handler suites embed it.
type PostgresQuerySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *PostgresQuerySuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&cabinetrepo.CabinetDTO{},
		&cabinetrepo.CabinetLogDTO{},
		&lockerrepo.LockerDTO{},
		&lockerrepo.LockerLogDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.OrderDTO{},
		&routerepo.RouteDTO{},
		&routerepo.StoreDTO{},
		&routerepo.RouteVersionDTO{},
		&routerepo.RouteVersionCabinetDTO{},
		&classifierrepo.ClassifierDTO{},
		&timeslotrepo.TimeSlotConfigDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *PostgresQuerySuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *PostgresQuerySuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		cabinets, cabinet_logs, lockers, locker_logs, deliveries, orders,
		routes, stores, route_versions, route_version_cabinets,
		classifiers, time_slot_configs CASCADE`).Error
	suite.Require().NoError(err)
}
