package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/fallback"
	"sahasrayogam-be/internal/model"
	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/internal/repository/implementation"
	"sahasrayogam-be/internal/repository/specification"
	"sahasrayogam-be/internal/repository/unitofwork"
	"sahasrayogam-be/internal/service"
	"sahasrayogam-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func connect(t *testing.T) *gorm.DB {
	t.Helper()
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err, "Failed to connect to DB")
	require.NoError(t, gormDB.AutoMigrate(&model.Formulation{}))
	return gormDB
}

func TestFormulationRepositoryInTransaction(t *testing.T) {
	gormDB := connect(t)
	ctx := context.Background()

	bundled, err := fallback.Formulations()
	require.NoError(t, err)

	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	defer func() { _ = uow.Rollback() }()

	repo := uow.FormulationRepository()
	require.NoError(t, repo.Upsert(ctx, bundled))

	t.Run("FindAll keeps source order", func(t *testing.T) {
		all, err := repo.FindAll(ctx, specification.ByIDs{IDs: []int64{bundled[0].Id, bundled[1].Id}}, specification.InSourceOrder())
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, bundled[0].Name, all[0].Name)
		assert.Equal(t, bundled[1].Name, all[1].Name)
	})

	t.Run("ByCategory partitions", func(t *testing.T) {
		count, err := repo.Count(ctx, specification.ByCategory{Category: entity.CategoryGhrita})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, int64(4))
	})

	t.Run("Null columns round trip", func(t *testing.T) {
		found, err := repo.FindOne(ctx, specification.ByID{ID: bundled[0].Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Empty(t, found.SanskritVerse)
		assert.False(t, found.MissingIngredients)
	})

	t.Run("FindOne returns nil when absent", func(t *testing.T) {
		found, err := repo.FindOne(ctx, specification.ByID{ID: -1})
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestCatalogLoadsFromDatabase(t *testing.T) {
	gormDB := connect(t)

	catalog := service.NewCatalogService(
		implementation.NewFormulationRepository(gormDB),
		fallback.Formulations,
		nil,
		logger.NewNopLogger(),
	)
	catalog.Load(context.Background())

	assert.False(t, catalog.IsLoading())
	assert.Equal(t, constant.SourceRemote, catalog.Source())
}
