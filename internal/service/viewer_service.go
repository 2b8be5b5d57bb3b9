package service

import (
	"fmt"

	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/repository/contract"
	"sahasrayogam-be/internal/viewer"

	"github.com/google/uuid"
)

const (
	CommandSetQuery    = "set_query"
	CommandSetCategory = "set_category"
	CommandSetField    = "set_field"
	CommandRefresh     = "refresh"
)

type IViewerService interface {
	// Open restores the viewer of sessionId, or starts a fresh one under a
	// new id when sessionId is empty or unknown.
	Open(sessionId string) *viewer.Controller
	// Apply runs one transition and persists the resulting state.
	Apply(controller *viewer.Controller, cmd *dto.ViewerCommand) error
	// Sync hands the loaded collection to a viewer still waiting for it.
	Sync(controller *viewer.Controller)
	Save(controller *viewer.Controller)
}

type viewerService struct {
	sessions        contract.SessionRepository
	catalog         ICatalogService
	search          ISearchService
	defaultCategory entity.Category
}

func NewViewerService(
	sessions contract.SessionRepository,
	catalog ICatalogService,
	search ISearchService,
	defaultCategory entity.Category,
) IViewerService {
	return &viewerService{
		sessions:        sessions,
		catalog:         catalog,
		search:          search,
		defaultCategory: defaultCategory,
	}
}

func (s *viewerService) Open(sessionId string) *viewer.Controller {
	state, found := viewer.State{}, false
	if sessionId != "" {
		state, found = s.sessions.Get(sessionId)
	}
	if !found {
		sessionId = uuid.NewString()
		state = viewer.DefaultState(s.defaultCategory)
		s.sessions.Save(sessionId, state)
	}

	controller := viewer.New(sessionId, state, s.search.Filter)
	s.Sync(controller)
	return controller
}

func (s *viewerService) Apply(controller *viewer.Controller, cmd *dto.ViewerCommand) error {
	switch cmd.Type {
	case CommandSetQuery:
		controller.SetQuery(cmd.Value)
	case CommandSetCategory:
		if err := controller.SetCategory(entity.Category(cmd.Value)); err != nil {
			return fmt.Errorf("%w: %v", ErrUnknownCategory, err)
		}
	case CommandSetField:
		controller.SetField(cmd.Value)
	case CommandRefresh:
	default:
		return fmt.Errorf("unknown viewer command %q", cmd.Type)
	}

	s.Sync(controller)
	s.Save(controller)
	return nil
}

func (s *viewerService) Sync(controller *viewer.Controller) {
	if controller.Loading() && !s.catalog.IsLoading() {
		controller.SetCollection(s.catalog.Collection())
	}
}

func (s *viewerService) Save(controller *viewer.Controller) {
	s.sessions.Save(controller.Id(), controller.State())
}
