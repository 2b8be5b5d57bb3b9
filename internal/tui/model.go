// Package tui is the terminal formulary viewer. It drives a
// viewer.Controller from the keyboard and renders its view with lipgloss.
package tui

import (
	"strings"

	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/viewer"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Loader fetches the collection. It runs once, off the UI loop.
type Loader func() []*entity.Formulation

// collectionMsg delivers the loaded collection to the model.
type collectionMsg struct {
	records []*entity.Formulation
}

// chromeHeight is the number of lines drawn around the results viewport.
const chromeHeight = 6

type Model struct {
	keys  KeyMap
	theme Theme

	controller *viewer.Controller
	load       Loader

	// searching is true while the search line has keyboard focus.
	searching bool

	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

func NewModel(controller *viewer.Controller, load Loader) Model {
	return Model{
		keys:       DefaultKeyMap,
		theme:      DefaultTheme,
		controller: controller,
		load:       load,
	}
}

func (model Model) Init() tea.Cmd {
	if model.load == nil {
		return nil
	}
	load := model.load
	return func() tea.Msg {
		return collectionMsg{records: load()}
	}
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		if model.searching {
			return model.handleSearchKeys(message)
		}
		return model.handleKeys(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.viewport.Width = message.Width
		model.viewport.Height = max(message.Height-chromeHeight, 1)
		model.refresh()

	case collectionMsg:
		model.controller.SetCollection(message.records)
		model.refresh()
		model.viewport.GotoTop()
	}
	return model, nil
}

func (model Model) handleKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.SearchActivate):
		model.searching = true

	case key.Matches(message, model.keys.SearchClear):
		model.setQuery("")

	case key.Matches(message, model.keys.NextCategory):
		model.cycleCategory()

	case key.Matches(message, model.keys.NextField):
		model.cycleField()

	case key.Matches(message, model.keys.Up):
		model.viewport.LineUp(1)
	case key.Matches(message, model.keys.Down):
		model.viewport.LineDown(1)
	case key.Matches(message, model.keys.PageUp):
		model.viewport.HalfViewUp()
	case key.Matches(message, model.keys.PageDown):
		model.viewport.HalfViewDown()
	case key.Matches(message, model.keys.Home):
		model.viewport.GotoTop()
	}
	return model, nil
}

// handleSearchKeys routes typing to the query. Every keystroke re-runs
// the search.
func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	query := model.controller.State().Query
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.SearchClear):
		if query != "" {
			model.setQuery("")
		} else {
			model.searching = false
		}

	case message.Type == tea.KeyEnter:
		model.searching = false

	case message.Type == tea.KeyBackspace:
		if query != "" {
			runes := []rune(query)
			model.setQuery(string(runes[:len(runes)-1]))
		}

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		runes := message.Runes
		if message.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		model.setQuery(query + string(runes))
	}
	return model, nil
}

func (model *Model) setQuery(query string) {
	model.controller.SetQuery(query)
	model.refresh()
	model.viewport.GotoTop()
}

func (model *Model) cycleCategory() {
	current := model.controller.State().Category
	next := entity.Categories[0]
	for i, category := range entity.Categories {
		if category == current {
			next = entity.Categories[(i+1)%len(entity.Categories)]
			break
		}
	}
	_ = model.controller.SetCategory(next)
	model.refresh()
	model.viewport.GotoTop()
}

func (model *Model) cycleField() {
	current := constant.LookupFieldScope(model.controller.State().Field).Id
	next := constant.FieldScopes[0].Id
	for i, scope := range constant.FieldScopes {
		if scope.Id == current {
			next = constant.FieldScopes[(i+1)%len(constant.FieldScopes)].Id
			break
		}
	}
	model.controller.SetField(next)
	model.refresh()
	model.viewport.GotoTop()
}

// refresh re-renders the results into the viewport.
func (model *Model) refresh() {
	model.viewport.SetContent(RenderResults(model.theme, model.controller.View(), model.width))
}

func (model Model) View() string {
	if !model.ready {
		return ""
	}
	view := model.controller.View()

	header := model.theme.Title.Render("Sahasrayogam") + "  " + model.theme.Subtitle.Render(view.Subtitle)

	categories := make([]string, len(view.Categories))
	for i, option := range view.Categories {
		style := model.theme.Tab
		if option.Active {
			style = model.theme.ActiveTab
		}
		categories[i] = style.Render(option.Label)
	}

	fields := make([]string, len(view.Fields))
	for i, option := range view.Fields {
		style := model.theme.Tab
		if option.Active {
			style = model.theme.ActiveTab
		}
		fields[i] = style.Render(option.Label)
	}

	search := model.theme.Placeholder.Render(view.Placeholder)
	if view.Query != "" || model.searching {
		search = model.theme.Search.Render(view.Query)
	}
	prompt := "  "
	if model.searching {
		prompt = "/ "
	}

	help := make([]string, 0, len(model.keys.ShortHelp()))
	for _, binding := range model.keys.ShortHelp() {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, categories...),
		lipgloss.JoinHorizontal(lipgloss.Top, fields...),
		prompt+search,
		model.theme.Count.Render(view.CountLine),
		model.viewport.View(),
		model.theme.Help.Render(strings.Join(help, " · ")),
	)
}
