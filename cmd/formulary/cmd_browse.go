package main

import (
	"fmt"

	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/tui"
	"sahasrayogam-be/internal/viewer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive formulary viewer",
	Long: `Open a full-screen viewer with live search.

Keys: / search, esc clear, tab switch category, f switch field, j/k scroll, q quit.`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	r, err := newApp()
	if err != nil {
		return err
	}

	category := entity.Category(r.category())
	if !category.Valid() {
		return fmt.Errorf("unknown category %q (want Kashaya or Ghrita)", category)
	}

	state := viewer.DefaultState(category)
	controller := viewer.New("terminal", state, r.search.Filter)
	controller.SetField(fieldFlag)

	model := tui.NewModel(controller, func() []*entity.Formulation {
		r.load()
		return r.catalog.Collection()
	})

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
