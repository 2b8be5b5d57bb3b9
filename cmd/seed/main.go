package main

import (
	"context"
	"os"

	"sahasrayogam-be/internal/config"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/fallback"
	"sahasrayogam-be/internal/repository/specification"
	"sahasrayogam-be/internal/repository/unitofwork"
	"sahasrayogam-be/pkg/database"

	"github.com/fatih/color"
)

// seed upserts the bundled snapshots into the formulations table so the
// hosted store starts from the same content the fallback serves.
func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, false)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	formulations, err := fallback.Formulations()
	if err != nil {
		color.Red("Error: Failed to read bundled snapshot: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		color.Red("Error: Failed to begin transaction: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding %d formulations...", len(formulations))
	if err := uow.FormulationRepository().Upsert(ctx, formulations); err != nil {
		_ = uow.Rollback()
		color.Red("Error: Upsert failed: %v", err)
		os.Exit(1)
	}
	if err := uow.Commit(); err != nil {
		color.Red("Error: Commit failed: %v", err)
		os.Exit(1)
	}

	repo := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx).FormulationRepository()
	for _, category := range entity.Categories {
		count, err := repo.Count(ctx, specification.ByCategory{Category: category})
		if err != nil {
			color.Yellow("Warn: Failed to count %s: %v", category, err)
			continue
		}
		color.Green("%s: %d formulations", category, count)
	}
}
