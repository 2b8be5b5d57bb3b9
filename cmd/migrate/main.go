package main

import (
	"os"

	"sahasrayogam-be/internal/config"
	"sahasrayogam-be/internal/model"
	"sahasrayogam-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, true)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Migrating formulations table...")

	if err := db.AutoMigrate(&model.Formulation{}); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	// Partition scans filter on category.
	indexSQL := `CREATE INDEX IF NOT EXISTS idx_formulations_category ON formulations (category);`
	if err := db.Exec(indexSQL).Error; err != nil {
		color.Yellow("Warn: Failed to create category index: %v", err)
	}

	color.Green("Success: formulations table is up to date.")
}
