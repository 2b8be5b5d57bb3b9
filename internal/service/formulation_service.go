package service

import (
	"context"
	"errors"

	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/mapper"
)

var (
	ErrUnknownCategory     = errors.New("unknown category")
	ErrFormulationNotFound = errors.New("formulation not found")
)

type IFormulationService interface {
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
	Show(ctx context.Context, id int64) (*dto.CardResponse, error)
	Categories(ctx context.Context) []*dto.CategoryResponse
	Fields(ctx context.Context) []*dto.FieldScopeResponse
	Status(ctx context.Context) dto.StatusResponse
}

type formulationService struct {
	catalog         ICatalogService
	search          ISearchService
	defaultCategory entity.Category
	cards           *mapper.CardMapper
}

func NewFormulationService(
	catalog ICatalogService,
	search ISearchService,
	defaultCategory entity.Category,
) IFormulationService {
	if !defaultCategory.Valid() {
		defaultCategory = constant.DefaultCategory
	}
	return &formulationService{
		catalog:         catalog,
		search:          search,
		defaultCategory: defaultCategory,
		cards:           mapper.NewCardMapper(),
	}
}

func (s *formulationService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	category := s.defaultCategory
	if req.Category != "" {
		category = entity.Category(req.Category)
	}
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}
	scope := constant.LookupFieldScope(req.Field)

	res := &dto.SearchResponse{
		Category: string(category),
		Field:    scope.Id,
		Query:    req.Query,
		Loading:  s.catalog.IsLoading(),
		Results:  make([]*dto.CardResponse, 0),
	}
	if res.Loading {
		return res, nil
	}

	results := s.search.Filter(s.catalog.Collection(), category, scope.Id, req.Query)
	res.Results = s.cards.ToCards(results)
	res.Count = len(results)
	return res, nil
}

func (s *formulationService) Show(ctx context.Context, id int64) (*dto.CardResponse, error) {
	formulation, ok := s.catalog.FindById(id)
	if !ok {
		return nil, ErrFormulationNotFound
	}
	return s.cards.ToCard(formulation), nil
}

func (s *formulationService) Categories(ctx context.Context) []*dto.CategoryResponse {
	result := make([]*dto.CategoryResponse, 0, len(constant.CategoryInfos))
	for _, info := range constant.CategoryInfos {
		result = append(result, &dto.CategoryResponse{
			Id:          string(info.Id),
			Label:       info.Label,
			Description: info.Description,
		})
	}
	return result
}

func (s *formulationService) Fields(ctx context.Context) []*dto.FieldScopeResponse {
	result := make([]*dto.FieldScopeResponse, 0, len(constant.FieldScopes))
	for _, scope := range constant.FieldScopes {
		result = append(result, &dto.FieldScopeResponse{
			Id:    scope.Id,
			Label: scope.Label,
			Keys:  scope.Keys,
		})
	}
	return result
}

func (s *formulationService) Status(ctx context.Context) dto.StatusResponse {
	return s.catalog.Status()
}
