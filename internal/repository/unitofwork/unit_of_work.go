package unitofwork

import (
	"context"

	"sahasrayogam-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	FormulationRepository() contract.FormulationRepository
}
