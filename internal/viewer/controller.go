// Package viewer owns the state of one formulary viewer: the active query,
// category, field scope and the collection being browsed. State only changes
// through the Set* transitions; View derives everything a frame shows.
package viewer

import (
	"fmt"
	"sync"

	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/mapper"
)

// Filter scopes records to a category and narrows them by query.
type Filter func(records []*entity.Formulation, category entity.Category, fieldId, query string) []*entity.Formulation

// State is the serializable part of a viewer, kept between requests.
type State struct {
	Query    string          `json:"query"`
	Category entity.Category `json:"category"`
	Field    string          `json:"field"`
}

// DefaultState is what a fresh viewer starts with.
func DefaultState(category entity.Category) State {
	if !category.Valid() {
		category = constant.DefaultCategory
	}
	return State{Category: category, Field: constant.FieldScopeAll}
}

type Controller struct {
	mu         sync.Mutex
	id         string
	state      State
	collection []*entity.Formulation
	loading    bool
	filter     Filter
	cards      *mapper.CardMapper
}

// New starts a viewer in the loading state.
func New(id string, state State, filter Filter) *Controller {
	return &Controller{
		id:      id,
		state:   state,
		loading: true,
		filter:  filter,
		cards:   mapper.NewCardMapper(),
	}
}

func (c *Controller) Id() string {
	return c.id
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Query = query
}

func (c *Controller) SetCategory(category entity.Category) error {
	if !category.Valid() {
		return fmt.Errorf("unknown category %q", category)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Category = category
	return nil
}

// SetField selects a field scope. Unknown ids select "all".
func (c *Controller) SetField(fieldId string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Field = constant.LookupFieldScope(fieldId).Id
}

// SetCollection replaces the browsed collection wholesale and ends the
// loading state. The slice is shared, never modified.
func (c *Controller) SetCollection(records []*entity.Formulation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collection = records
	c.loading = false
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// results is the category partition of collection narrowed by the query
// held in state.
func (c *Controller) results(state State, collection []*entity.Formulation) []*entity.Formulation {
	return c.filter(collection, state.Category, constant.LookupFieldScope(state.Field).Id, state.Query)
}

func (c *Controller) View() dto.ViewResponse {
	c.mu.Lock()
	state, collection, loading := c.state, c.collection, c.loading
	c.mu.Unlock()

	scope := constant.LookupFieldScope(state.Field)
	view := dto.ViewResponse{
		SessionId:   c.id,
		Category:    string(state.Category),
		Subtitle:    fmt.Sprintf(constant.SubtitleFormat, state.Category),
		Field:       scope.Id,
		Placeholder: fmt.Sprintf(constant.PlaceholderFormat, scope.Label),
		Query:       state.Query,
		Loading:     loading,
		Categories:  categoryOptions(state.Category),
		Fields:      fieldOptions(scope.Id),
		Cards:       []*dto.CardResponse{},
	}

	if loading {
		view.CountLine = constant.LoadingMessage
		return view
	}

	results := c.results(state, collection)
	view.Cards = c.cards.ToCards(results)
	view.Count = len(results)
	view.CountLine = fmt.Sprintf(constant.ResultCountFormat, view.Count)
	if view.Count == 0 {
		view.EmptyMessage = fmt.Sprintf(constant.EmptyStateFormat, state.Query)
		view.EmptyHint = constant.EmptyStateHint
	}
	return view
}

func categoryOptions(active entity.Category) []dto.OptionResponse {
	options := make([]dto.OptionResponse, len(constant.CategoryInfos))
	for i, info := range constant.CategoryInfos {
		options[i] = dto.OptionResponse{Id: string(info.Id), Label: info.Label, Active: info.Id == active}
	}
	return options
}

func fieldOptions(active string) []dto.OptionResponse {
	options := make([]dto.OptionResponse, len(constant.FieldScopes))
	for i, scope := range constant.FieldScopes {
		options[i] = dto.OptionResponse{Id: scope.Id, Label: scope.Label, Active: scope.Id == active}
	}
	return options
}
