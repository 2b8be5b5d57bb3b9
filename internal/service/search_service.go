package service

import (
	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/pkg/fuzzy"
	"sahasrayogam-be/pkg/search"
)

type ISearchService interface {
	// Partition keeps the records of one category, in input order.
	Partition(records []*entity.Formulation, category entity.Category) []*entity.Formulation
	// Filter partitions by category, then narrows by query within the
	// selected field scope.
	Filter(records []*entity.Formulation, category entity.Category, fieldId, query string) []*entity.Formulation
}

type searchService struct {
	matcher fuzzy.Matcher
}

func NewSearchService(matcher fuzzy.Matcher) ISearchService {
	return &searchService{matcher: matcher}
}

func (s *searchService) Partition(records []*entity.Formulation, category entity.Category) []*entity.Formulation {
	partition := make([]*entity.Formulation, 0, len(records))
	for _, record := range records {
		if record.Category == category {
			partition = append(partition, record)
		}
	}
	return partition
}

func (s *searchService) Filter(records []*entity.Formulation, category entity.Category, fieldId, query string) []*entity.Formulation {
	candidates := s.Partition(records, category)
	scope := constant.LookupFieldScope(fieldId)
	return search.Narrow(candidates, query, scope.Keys, s.matcher, formulationText)
}

func formulationText(f *entity.Formulation, key string) string {
	return f.Field(key)
}
