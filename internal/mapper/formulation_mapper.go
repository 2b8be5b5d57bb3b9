package mapper

import (
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/model"
)

type FormulationMapper struct{}

func NewFormulationMapper() *FormulationMapper {
	return &FormulationMapper{}
}

func (m *FormulationMapper) ToEntity(f *model.Formulation) *entity.Formulation {
	if f == nil {
		return nil
	}
	return &entity.Formulation{
		Id:                 f.Id,
		Category:           entity.Category(f.Category),
		Name:               f.Name,
		EntryNumber:        f.EntryNumber,
		SanskritVerse:      deref(f.SanskritVerse),
		Ingredients:        deref(f.Ingredients),
		Procedure:          deref(f.Procedure),
		Indications:        deref(f.Indications),
		Notes:              deref(f.Notes),
		MissingIngredients: f.Ingredients == nil,
		MissingProcedure:   f.Procedure == nil,
	}
}

func (m *FormulationMapper) ToModel(f *entity.Formulation) *model.Formulation {
	if f == nil {
		return nil
	}
	out := &model.Formulation{
		Id:            f.Id,
		Category:      string(f.Category),
		Name:          f.Name,
		EntryNumber:   f.EntryNumber,
		SanskritVerse: optional(f.SanskritVerse),
		Indications:   optional(f.Indications),
		Notes:         optional(f.Notes),
	}
	if !f.MissingIngredients {
		out.Ingredients = &f.Ingredients
	}
	if !f.MissingProcedure {
		out.Procedure = &f.Procedure
	}
	return out
}

func (m *FormulationMapper) ToEntities(formulations []*model.Formulation) []*entity.Formulation {
	entities := make([]*entity.Formulation, len(formulations))
	for i, f := range formulations {
		entities[i] = m.ToEntity(f)
	}
	return entities
}

func (m *FormulationMapper) ToModels(formulations []*entity.Formulation) []*model.Formulation {
	models := make([]*model.Formulation, len(formulations))
	for i, f := range formulations {
		models[i] = m.ToModel(f)
	}
	return models
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
