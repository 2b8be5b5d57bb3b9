package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/fallback"
	"sahasrayogam-be/internal/pkg/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogServiceLoadsRemoteCollection(t *testing.T) {
	repo := &fakeFormulationRepository{records: []*entity.Formulation{
		kashaya(1, "Guduchyadi Kashayam", "Guduchi: 1 part", "Fever, Burning sensation"),
		ghrita(2, "Brahmi Ghritam", "Brahmi juice: 4 parts", "Insanity, Epilepsy"),
	}}
	publisher := &fakePublisherService{}
	catalog := NewCatalogService(repo, staticFallback(), publisher, logger.NewNopLogger())

	assert.True(t, catalog.IsLoading())
	assert.Empty(t, catalog.Source())
	assert.Nil(t, catalog.Collection())

	catalog.Load(context.Background())

	assert.False(t, catalog.IsLoading())
	assert.Equal(t, constant.SourceRemote, catalog.Source())
	assert.Len(t, catalog.Collection(), 2)

	record, ok := catalog.FindById(2)
	require.True(t, ok)
	assert.Equal(t, "Brahmi Ghritam", record.Name)

	_, ok = catalog.FindById(99)
	assert.False(t, ok)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, constant.SourceRemote, publisher.published[0].Source)
	assert.Equal(t, 2, publisher.published[0].Total)
}

func TestCatalogServiceLoadRunsOnce(t *testing.T) {
	repo := &fakeFormulationRepository{records: []*entity.Formulation{kashaya(1, "Rasnadi", "", "")}}
	catalog := NewCatalogService(repo, staticFallback(), nil, logger.NewNopLogger())

	catalog.Load(context.Background())
	repo.records = nil
	catalog.Load(context.Background())

	assert.Equal(t, 1, repo.calls)
	assert.Len(t, catalog.Collection(), 1)
}

func TestCatalogServiceFallsBackOnError(t *testing.T) {
	repo := &fakeFormulationRepository{err: &pgconn.PgError{Code: "42P01", Message: `relation "formulations" does not exist`}}
	catalog := NewCatalogService(repo, fallback.Formulations, nil, logger.NewNopLogger())

	catalog.Load(context.Background())

	bundled, err := fallback.Formulations()
	require.NoError(t, err)

	assert.False(t, catalog.IsLoading())
	assert.Equal(t, constant.SourceFallback, catalog.Source())
	require.Len(t, catalog.Collection(), len(bundled))

	collection := catalog.Collection()
	assert.Equal(t, entity.CategoryKashaya, collection[0].Category)
	assert.Equal(t, entity.CategoryGhrita, collection[len(collection)-1].Category)
	for i := range bundled {
		assert.Equal(t, bundled[i].Id, collection[i].Id)
	}
}

func TestCatalogServiceTimeoutStillPublishesWithLiveContext(t *testing.T) {
	repo := &fakeFormulationRepository{hang: true}
	publisher := &fakePublisherService{}
	catalog := NewCatalogService(repo, staticFallback(kashaya(1, "Rasnadi", "", "")), publisher, logger.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	catalog.Load(ctx)

	assert.Equal(t, constant.SourceFallback, catalog.Source())
	require.Len(t, publisher.published, 1)
	assert.Equal(t, constant.SourceFallback, publisher.published[0].Source)
	assert.NoError(t, publisher.ctxErrs[0])
}

func TestCatalogServiceWithoutRepositoryUsesFallback(t *testing.T) {
	catalog := NewCatalogService(nil, staticFallback(kashaya(7, "Patoladi", "", "")), nil, logger.NewNopLogger())

	catalog.Load(context.Background())

	assert.Equal(t, constant.SourceFallback, catalog.Source())
	assert.Len(t, catalog.Collection(), 1)
}

func TestCatalogServiceEmptyRemoteIsSuccess(t *testing.T) {
	repo := &fakeFormulationRepository{records: []*entity.Formulation{}}
	catalog := NewCatalogService(repo, staticFallback(kashaya(7, "Patoladi", "", "")), nil, logger.NewNopLogger())

	catalog.Load(context.Background())

	assert.Equal(t, constant.SourceRemote, catalog.Source())
	assert.Empty(t, catalog.Collection())
	assert.Equal(t, 0, catalog.Status().Total)
}

func TestCatalogServiceUnreadableFallback(t *testing.T) {
	repo := &fakeFormulationRepository{err: errors.New("connection refused")}
	broken := func() ([]*entity.Formulation, error) { return nil, errors.New("bad snapshot") }
	catalog := NewCatalogService(repo, broken, nil, logger.NewNopLogger())

	catalog.Load(context.Background())

	assert.False(t, catalog.IsLoading())
	assert.Equal(t, constant.SourceFallback, catalog.Source())
	assert.Empty(t, catalog.Collection())
}

func TestCatalogServiceDropsDuplicateIds(t *testing.T) {
	repo := &fakeFormulationRepository{records: []*entity.Formulation{
		kashaya(1, "First", "", ""),
		kashaya(1, "Second", "", ""),
		nil,
		kashaya(2, "Third", "", ""),
	}}
	catalog := NewCatalogService(repo, staticFallback(), nil, logger.NewNopLogger())

	catalog.Load(context.Background())

	collection := catalog.Collection()
	require.Len(t, collection, 2)
	assert.Equal(t, "First", collection[0].Name)
	assert.Equal(t, "Third", collection[1].Name)
}

func TestCatalogServiceStatus(t *testing.T) {
	catalog := NewCatalogService(nil, staticFallback(kashaya(1, "A", "", ""), ghrita(2, "B", "", "")), nil, logger.NewNopLogger())

	assert.True(t, catalog.Status().Loading)

	catalog.Load(context.Background())
	status := catalog.Status()
	assert.False(t, status.Loading)
	assert.Equal(t, constant.SourceFallback, status.Source)
	assert.Equal(t, 2, status.Total)
}

func TestDescribeFetchError(t *testing.T) {
	details := describeFetchError(&pgconn.PgError{Code: "28P01", Severity: "FATAL"})
	assert.Equal(t, "28P01", details["sqlstate"])
	assert.Equal(t, "FATAL", details["severity"])

	details = describeFetchError(ErrRemoteUnavailable)
	assert.NotContains(t, details, "sqlstate")
	assert.Equal(t, ErrRemoteUnavailable, details["error"])
}
