// cmd/loader/main.go
// Reads scraped result batches from DATA_DIR, normalizes them and writes
// the clean dataset to PostgreSQL (or a CSV archive with -out).
//
// Usage:
//
//	DB_PASS=... JWT_SECRET=... go run ./cmd/loader [-dir ./data] [-out clean.csv]
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/padraicbc/drafdata/config"
	bundb "github.com/padraicbc/drafdata/db"
	"github.com/padraicbc/drafdata/ingest"
	applog "github.com/padraicbc/drafdata/logger"
	"github.com/padraicbc/drafdata/normalize"
	"github.com/padraicbc/drafdata/storage"
)

func main() {
	dir := flag.String("dir", "", "directory with scraped csv batches (default DATA_DIR)")
	out := flag.String("out", "", "write a csv archive to this path instead of postgres")
	flag.Parse()

	ctx := context.Background()
	cfg := config.Load()
	if *dir == "" {
		*dir = cfg.DataDir
	}

	logger, err := applog.New(cfg.Debug)
	if err != nil {
		log.Fatal("logger:", err)
	}
	defer func() { _ = logger.Sync() }()

	raw, err := ingest.LoadDir(*dir, logger)
	if err != nil {
		logger.Fatal("ingest failed", zap.Error(err))
	}

	pipe, err := normalize.New(logger)
	if err != nil {
		logger.Fatal("pipeline setup failed", zap.Error(err))
	}
	clean, report := pipe.Run(raw)

	var w storage.Writer
	if *out != "" {
		w = storage.NewCSVWriter(*out, logger)
	} else {
		db := bundb.Setup(cfg)
		defer db.Close()
		if err := bundb.CreateTables(ctx, db); err != nil {
			logger.Fatal("create tables failed", zap.Error(err))
		}
		w = storage.NewPostgresWriter(db, logger)
	}

	if err := w.Write(ctx, clean); err != nil {
		logger.Fatal("write failed", zap.Error(err))
	}

	logger.Info("load complete",
		zap.Int("raw", report.Total),
		zap.Int("clean", report.Kept),
		zap.Int("dropped", report.Dropped()),
		zap.Int("disciplineDrops", report.DisciplineDrops),
		zap.Int("cancelledDrops", report.CancelledDrops),
		zap.Int("currencyDrops", report.CurrencyDrops),
		zap.Int("dateDrops", report.DateDrops),
		zap.Int("bibAnomalies", report.BibAnomalies),
		zap.Int("suspectPaces", report.SuspectPaces))
}
