package implementation

import (
	"context"
	"errors"

	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/mapper"
	"sahasrayogam-be/internal/model"
	"sahasrayogam-be/internal/repository/contract"
	"sahasrayogam-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FormulationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FormulationMapper
}

func NewFormulationRepository(db *gorm.DB) contract.FormulationRepository {
	return &FormulationRepositoryImpl{
		db:     db,
		mapper: mapper.NewFormulationMapper(),
	}
}

func (r *FormulationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FormulationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Formulation, error) {
	var m model.Formulation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FormulationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Formulation, error) {
	var models []*model.Formulation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FormulationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Formulation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *FormulationRepositoryImpl) Upsert(ctx context.Context, formulations []*entity.Formulation) error {
	if len(formulations) == 0 {
		return nil
	}
	models := r.mapper.ToModels(formulations)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(models).Error
}
