package queries_test

import (
	"context"
	"testing"
	"time"

	"paquexpress/internal/adapters/out/postgres/parcelrepo"
	"paquexpress/internal/core/application/usecases/queries"
	"paquexpress/internal/core/domain/model/kernel"
	"paquexpress/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for wiring repositories in tests.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetPendingParcelsQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	handler    queries.GetPendingParcelsQueryHandler
	parcelRepo *parcelrepo.GormParcelRepository
	agentID    kernel.UUID
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPendingParcelsQueryHandler(db)
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, mockAggregateTracker{})
	suite.agentID = kernel.NewUUID()
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels").Error
	suite.Require().NoError(err)
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) addParcel(
	trackingCode string, owner kernel.UUID, delivered bool,
) *parcel.Parcel {
	p, err := parcel.NewParcel(kernel.NewUUID(), trackingCode, "Av. Reforma 123", "Small box",
		&owner, time.Now().UTC())
	suite.Require().NoError(err)

	if delivered {
		coordinates, coordErr := kernel.NewCoordinates(19.43, -99.13)
		suite.Require().NoError(coordErr)
		err = p.Deliver(coordinates, "pkg_"+trackingCode+".jpg", time.Now().UTC())
		suite.Require().NoError(err)
	}

	err = suite.parcelRepo.Add(context.Background(), p)
	suite.Require().NoError(err)
	return p
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetPendingParcelsQuery(suite.agentID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TestHandle_AllDelivered_ReturnsEmptySlice() {
	suite.addParcel("TRK-001", suite.agentID, true)
	suite.addParcel("TRK-002", suite.agentID, true)

	query, err := queries.NewGetPendingParcelsQuery(suite.agentID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyPending() {
	pending1 := suite.addParcel("TRK-001", suite.agentID, false)
	pending2 := suite.addParcel("TRK-002", suite.agentID, false)
	suite.addParcel("TRK-003", suite.agentID, true)

	query, err := queries.NewGetPendingParcelsQuery(suite.agentID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
		suite.False(r.IsDelivered)
	}
	suite.True(resultIDs[pending1.ID()])
	suite.True(resultIDs[pending2.ID()])
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TestHandle_OtherAgentsParcels_Excluded() {
	suite.addParcel("TRK-OTHER", kernel.NewUUID(), false)
	mine := suite.addParcel("TRK-MINE", suite.agentID, false)

	query, err := queries.NewGetPendingParcelsQuery(suite.agentID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(mine.ID()))
	suite.Equal("TRK-MINE", result[0].TrackingCode)
	suite.Equal("Av. Reforma 123", result[0].Address)
	suite.Equal("Small box", result[0].Description)
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TestHandle_ParcelsAreSortedByID() {
	for i := range 5 {
		suite.addParcel("TRK-SORT-"+string(rune('A'+i)), suite.agentID, false)
	}

	query, err := queries.NewGetPendingParcelsQuery(suite.agentID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 5)

	for i := range len(result) - 1 {
		suite.Less(result[i].ID.String(), result[i+1].ID.String(),
			"Parcels should be sorted by ID: %s should come before %s",
			result[i].ID, result[i+1].ID)
	}
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPendingParcelsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetPendingParcelsQuery constructor")
}

func (suite *GetPendingParcelsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.addParcel("TRK-001", suite.agentID, false)

	query, err := queries.NewGetPendingParcelsQuery(suite.agentID)
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetPendingParcelsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingParcelsQueryHandlerTestSuite))
}
