package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/mr1hm/go-hazard-maps/internal/config"
	"github.com/mr1hm/go-hazard-maps/internal/ingestion"
	"github.com/mr1hm/go-hazard-maps/internal/logging"
	"github.com/mr1hm/go-hazard-maps/internal/observability"
	"github.com/mr1hm/go-hazard-maps/internal/repository"
)

// hazard-import ingests a zipped shapefile straight into the store,
// bypassing the HTTP server. Useful for seeding and for bulk backfills.
func main() {
	archivePath := flag.String("file", "", "path to a zipped shapefile archive")
	datasetType := flag.String("type", "", "dataset type: flood, landslide or liquefaction")
	flag.Parse()

	if *archivePath == "" || *datasetType == "" {
		fmt.Fprintln(os.Stderr, "usage: hazard-import -file <archive.zip> -type <flood|landslide|liquefaction>")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	f, err := os.Open(*archivePath)
	if err != nil {
		logging.Fatalf("Failed to open archive: %v", err)
	}
	defer f.Close()

	pipeline := ingestion.NewPipeline(db, db, observability.NewMetrics(), cfg.Upload.TempDir)
	result, err := pipeline.Process(context.Background(), f, filepath.Base(*archivePath), *datasetType)
	if err != nil {
		logging.Fatalf("Import failed: %v", err)
	}

	slog.Info("import complete", "dataset", result.DatasetID, "records", result.RecordsCreated, "feature_errors", len(result.Errors))
	for _, fe := range result.Errors {
		slog.Warn("feature skipped", "feature", fe.Index, "reason", fe.Message)
	}
}
