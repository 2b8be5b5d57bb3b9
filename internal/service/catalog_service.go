package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/internal/repository/contract"
	"sahasrayogam-be/internal/repository/specification"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrRemoteUnavailable is returned when no remote store is configured.
var ErrRemoteUnavailable = errors.New("remote formulation store is not configured")

// publishTimeout bounds the collection-loaded publish, which runs after the
// load deadline may already have passed.
const publishTimeout = 5 * time.Second

// FallbackSource yields the bundled snapshot.
type FallbackSource func() ([]*entity.Formulation, error)

type ICatalogService interface {
	// Load makes the single attempt to read the remote collection,
	// substituting the bundled snapshot on any error. Later calls are
	// no-ops.
	Load(ctx context.Context)
	IsLoading() bool
	Source() string
	Collection() []*entity.Formulation
	FindById(id int64) (*entity.Formulation, bool)
	Status() dto.StatusResponse
}

type catalogSnapshot struct {
	records []*entity.Formulation
	byId    map[int64]*entity.Formulation
	source  string
}

type catalogService struct {
	repository contract.FormulationRepository
	fallback   FallbackSource
	publisher  IPublisherService
	logger     logger.ILogger

	once     sync.Once
	loading  atomic.Bool
	snapshot atomic.Pointer[catalogSnapshot]
}

// NewCatalogService builds the data source adapter. repository may be nil
// when no database is configured; the load then falls back immediately.
// publisher may be nil.
func NewCatalogService(
	repository contract.FormulationRepository,
	fallback FallbackSource,
	publisher IPublisherService,
	log logger.ILogger,
) ICatalogService {
	s := &catalogService{
		repository: repository,
		fallback:   fallback,
		publisher:  publisher,
		logger:     log,
	}
	s.loading.Store(true)
	return s
}

func (s *catalogService) Load(ctx context.Context) {
	s.once.Do(func() {
		s.load(ctx)
	})
}

func (s *catalogService) load(ctx context.Context) {
	source := constant.SourceRemote
	records, err := s.fetchRemote(ctx)
	if err != nil {
		s.logger.Error("CatalogService", "Error fetching formulations, using bundled snapshot", describeFetchError(err))

		source = constant.SourceFallback
		records, err = s.fallback()
		if err != nil {
			s.logger.Error("CatalogService", "Bundled snapshot unreadable, serving an empty collection", map[string]interface{}{"error": err})
			records = nil
		}
	}

	s.store(s.sanitize(records), source)

	status := s.Status()
	s.logger.Info("CatalogService", "Formulations loaded", map[string]interface{}{"source": status.Source, "total": status.Total})
	if s.publisher != nil {
		publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()
		s.publisher.PublishCollectionLoaded(publishCtx, status)
	}
}

func (s *catalogService) fetchRemote(ctx context.Context) ([]*entity.Formulation, error) {
	if s.repository == nil {
		return nil, ErrRemoteUnavailable
	}
	return s.repository.FindAll(ctx, specification.InSourceOrder())
}

// sanitize enforces id uniqueness (first occurrence wins) and reports rows
// the viewer will display incompletely or never.
func (s *catalogService) sanitize(records []*entity.Formulation) []*entity.Formulation {
	seen := make(map[int64]bool, len(records))
	clean := make([]*entity.Formulation, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		if seen[record.Id] {
			s.logger.Warn("CatalogService", "Duplicate formulation id dropped", map[string]interface{}{"id": record.Id, "name": record.Name})
			continue
		}
		seen[record.Id] = true

		if !record.Category.Valid() {
			s.logger.Warn("CatalogService", "Formulation has unknown category", map[string]interface{}{"id": record.Id, "category": record.Category})
		}
		if record.MissingIngredients || record.MissingProcedure {
			s.logger.Warn("CatalogService", "Formulation is missing text, rendering it empty", map[string]interface{}{
				"id":                  record.Id,
				"missing_ingredients": record.MissingIngredients,
				"missing_procedure":   record.MissingProcedure,
			})
		}
		clean = append(clean, record)
	}
	return clean
}

func (s *catalogService) store(records []*entity.Formulation, source string) {
	byId := make(map[int64]*entity.Formulation, len(records))
	for _, record := range records {
		byId[record.Id] = record
	}
	s.snapshot.Store(&catalogSnapshot{records: records, byId: byId, source: source})
	s.loading.Store(false)
}

func (s *catalogService) IsLoading() bool {
	return s.loading.Load()
}

func (s *catalogService) Source() string {
	if snap := s.snapshot.Load(); snap != nil {
		return snap.source
	}
	return ""
}

func (s *catalogService) Collection() []*entity.Formulation {
	if snap := s.snapshot.Load(); snap != nil {
		return snap.records
	}
	return nil
}

func (s *catalogService) FindById(id int64) (*entity.Formulation, bool) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, false
	}
	record, ok := snap.byId[id]
	return record, ok
}

func (s *catalogService) Status() dto.StatusResponse {
	snap := s.snapshot.Load()
	if snap == nil {
		return dto.StatusResponse{Loading: true}
	}
	return dto.StatusResponse{
		Loading: s.IsLoading(),
		Source:  snap.source,
		Total:   len(snap.records),
	}
}

func describeFetchError(err error) map[string]interface{} {
	details := map[string]interface{}{"error": err}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		details["sqlstate"] = pgErr.Code
		details["severity"] = pgErr.Severity
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		details["connect_error"] = true
	}
	return details
}
