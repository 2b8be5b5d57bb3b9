package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sahasrayogam-be/internal/constant"
	"sahasrayogam-be/internal/dto"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/service"
	"sahasrayogam-be/internal/tui"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [terms...]",
	Short: "Print the formulations matching every term",
	Long: `Print the formulations of a category that match every search term.

Terms are separated by spaces or commas; each may contain typos. With no
terms the whole category is printed.`,
	Example: `  formulary search guduchi fever
  formulary search --category Ghrita --field indications insanity`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	r, err := newApp()
	if err != nil {
		return err
	}
	r.load()
	printSource(r)

	formulations := service.NewFormulationService(r.catalog, r.search, entity.Category(r.cfg.Search.DefaultCategory))
	res, err := formulations.Search(context.Background(), &dto.SearchRequest{
		Category: r.category(),
		Field:    fieldFlag,
		Query:    strings.Join(args, " "),
	})
	if errors.Is(err, service.ErrUnknownCategory) {
		return fmt.Errorf("unknown category %q (want Kashaya or Ghrita)", r.category())
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if res.Count == 0 {
		fmt.Fprintf(out, constant.EmptyStateFormat+"\n", res.Query)
		fmt.Fprintln(out, constant.EmptyStateHint)
		return nil
	}
	fmt.Fprintf(out, constant.ResultCountFormat+"\n", res.Count)
	for _, card := range res.Results {
		fmt.Fprintln(out, tui.RenderCard(tui.DefaultTheme, card, 80))
	}
	return nil
}
