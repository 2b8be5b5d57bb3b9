package service

import (
	"context"
	"errors"
	"sync"

	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/repository/specification"
	"sahasrayogam-be/pkg/events"
)

type fakeFormulationRepository struct {
	mu      sync.Mutex
	records []*entity.Formulation
	err     error
	calls   int
	// blocks FindAll until the caller's context is done
	hang bool
}

func (r *fakeFormulationRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Formulation, error) {
	return nil, errors.New("not used")
}

func (r *fakeFormulationRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Formulation, error) {
	r.mu.Lock()
	r.calls++
	hang := r.hang
	r.mu.Unlock()
	if hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.records, nil
}

func (r *fakeFormulationRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.records)), nil
}

func (r *fakeFormulationRepository) Upsert(ctx context.Context, formulations []*entity.Formulation) error {
	return errors.New("not used")
}

type fakePublisherService struct {
	published []dto.StatusResponse
	ctxErrs   []error
}

func (p *fakePublisherService) PublishCollectionLoaded(ctx context.Context, status dto.StatusResponse) {
	p.published = append(p.published, status)
	p.ctxErrs = append(p.ctxErrs, ctx.Err())
}

type fakeEventBus struct {
	events []events.Event
	err    error
}

func (b *fakeEventBus) Publish(ctx context.Context, event events.Event) error {
	b.events = append(b.events, event)
	return b.err
}

func kashaya(id int64, name, ingredients, indications string) *entity.Formulation {
	return &entity.Formulation{
		Id:          id,
		Category:    entity.CategoryKashaya,
		Name:        name,
		EntryNumber: int(id),
		Ingredients: ingredients,
		Procedure:   "Boil in water\nReduce to one quarter",
		Indications: indications,
	}
}

func ghrita(id int64, name, ingredients, indications string) *entity.Formulation {
	f := kashaya(id, name, ingredients, indications)
	f.Category = entity.CategoryGhrita
	return f
}

func staticFallback(records ...*entity.Formulation) FallbackSource {
	return func() ([]*entity.Formulation, error) {
		return records, nil
	}
}
