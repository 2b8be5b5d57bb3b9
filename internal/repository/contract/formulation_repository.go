package contract

import (
	"context"

	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/repository/specification"
)

type FormulationRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Formulation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Formulation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// Upsert is used by operator tooling only; the service never writes.
	Upsert(ctx context.Context, formulations []*entity.Formulation) error
}
