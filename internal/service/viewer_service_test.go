package service

import (
	"context"
	"testing"
	"time"

	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViewerService(records ...*entity.Formulation) (IViewerService, ICatalogService, *memory.SessionRepository) {
	catalog := NewCatalogService(&fakeFormulationRepository{records: records}, staticFallback(), nil, logger.NewNopLogger())
	sessions := memory.NewSessionRepository(time.Hour)
	return NewViewerService(sessions, catalog, newTestSearchService(), entity.CategoryKashaya), catalog, sessions
}

func TestViewerServiceOpenFreshSession(t *testing.T) {
	svc, _, sessions := newTestViewerService()

	controller := svc.Open("")
	require.NotEmpty(t, controller.Id())
	assert.True(t, controller.Loading())
	assert.Equal(t, entity.CategoryKashaya, controller.State().Category)
	assert.Equal(t, "all", controller.State().Field)

	_, found := sessions.Get(controller.Id())
	assert.True(t, found)

	unknown := svc.Open("no-such-session")
	assert.NotEqual(t, "no-such-session", unknown.Id())
}

func TestViewerServiceApplyPersistsState(t *testing.T) {
	svc, catalog, _ := newTestViewerService(
		kashaya(1, "Amritottaram", "Guduchi: 1 part", "Fever, Cough"),
		ghrita(2, "Indukanta Ghritam", "Putika: 1 part", "Abdominal pain"),
	)
	catalog.Load(context.Background())

	controller := svc.Open("")
	require.False(t, controller.Loading())

	require.NoError(t, svc.Apply(controller, &dto.ViewerCommand{Type: CommandSetQuery, Value: "fever"}))
	require.NoError(t, svc.Apply(controller, &dto.ViewerCommand{Type: CommandSetField, Value: "indications"}))
	view := controller.View()
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, "Showing 1 formulations", view.CountLine)

	require.NoError(t, svc.Apply(controller, &dto.ViewerCommand{Type: CommandSetCategory, Value: "Ghrita"}))
	view = controller.View()
	assert.Equal(t, 0, view.Count)
	assert.Equal(t, `No recipes found matching "fever"`, view.EmptyMessage)

	restored := svc.Open(controller.Id())
	assert.Equal(t, controller.Id(), restored.Id())
	assert.Equal(t, "fever", restored.State().Query)
	assert.Equal(t, entity.CategoryGhrita, restored.State().Category)
	assert.Equal(t, "indications", restored.State().Field)
}

func TestViewerServiceApplyRejectsBadCommands(t *testing.T) {
	svc, _, _ := newTestViewerService()
	controller := svc.Open("")

	err := svc.Apply(controller, &dto.ViewerCommand{Type: CommandSetCategory, Value: "Churna"})
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Equal(t, entity.CategoryKashaya, controller.State().Category)

	assert.Error(t, svc.Apply(controller, &dto.ViewerCommand{Type: "jump"}))
}

func TestViewerServiceSyncAfterLoad(t *testing.T) {
	svc, catalog, _ := newTestViewerService(kashaya(1, "Amritottaram", "", ""))
	controller := svc.Open("")
	assert.True(t, controller.View().Loading)
	assert.Equal(t, "Loading formulations...", controller.View().CountLine)

	catalog.Load(context.Background())
	require.NoError(t, svc.Apply(controller, &dto.ViewerCommand{Type: CommandRefresh}))

	view := controller.View()
	assert.False(t, view.Loading)
	assert.Equal(t, 1, view.Count)
}
