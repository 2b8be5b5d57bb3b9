// Command formulary searches and browses the formulary from a terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"sahasrayogam-be/internal/config"
	"sahasrayogam-be/internal/fallback"
	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/internal/repository/contract"
	"sahasrayogam-be/internal/repository/implementation"
	"sahasrayogam-be/internal/service"
	"sahasrayogam-be/pkg/database"
	"sahasrayogam-be/pkg/fuzzy"

	"github.com/spf13/cobra"
)

var (
	categoryFlag string
	fieldFlag    string
	matcherFlag  string
	offlineFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "formulary",
	Short: "Search the Sahasrayogam formulary",
	Long: `Search and browse Kashaya and Ghrita formulations.

The collection is read from DB_CONNECTION_STRING when set, otherwise from
the snapshot bundled with the binary.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&categoryFlag, "category", "c", "", "category to search (Kashaya or Ghrita)")
	rootCmd.PersistentFlags().StringVarP(&fieldFlag, "field", "f", "all", "field scope: all, name, ingredients, indications, sanskrit_verse, procedure")
	rootCmd.PersistentFlags().StringVar(&matcherFlag, "matcher", "", "approximate or subsequence (default from SEARCH_MATCHER)")
	rootCmd.PersistentFlags().BoolVar(&offlineFlag, "offline", false, "skip the database and use the bundled snapshot")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(eventsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app is what both subcommands need: the loaded-on-demand catalog and
// the search over it.
type app struct {
	cfg     *config.Config
	catalog service.ICatalogService
	search  service.ISearchService
}

func newApp() (*app, error) {
	cfg := config.Load()
	log := logger.NewConsoleLogger()

	kind := cfg.Search.Matcher
	if matcherFlag != "" {
		kind = matcherFlag
	}
	matcher, err := fuzzy.New(kind, cfg.Search.Threshold)
	if err != nil {
		return nil, err
	}

	var repo contract.FormulationRepository
	if !offlineFlag && cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
		if err != nil {
			log.Warn("Formulary", "Database unavailable, using bundled snapshot", map[string]interface{}{"error": err})
		} else {
			repo = implementation.NewFormulationRepository(db)
		}
	}

	return &app{
		cfg:     cfg,
		catalog: service.NewCatalogService(repo, fallback.Formulations, nil, log),
		search:  service.NewSearchService(matcher),
	}, nil
}

func (r *app) load() {
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Database.LoadTimeout)
	defer cancel()
	r.catalog.Load(ctx)
}

func (r *app) category() string {
	if categoryFlag != "" {
		return categoryFlag
	}
	return r.cfg.Search.DefaultCategory
}

func printSource(r *app) {
	status := r.catalog.Status()
	fmt.Fprintf(os.Stderr, "%d formulations from %s\n", status.Total, status.Source)
}
