package storage

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/padraicbc/drafdata/models"
)

const insertBatchSize = 500

// PostgresWriter bulk-inserts normalized results into the results table.
type PostgresWriter struct {
	db  *bun.DB
	log *zap.Logger
}

// NewPostgresWriter creates a writer over an open bun connection.
func NewPostgresWriter(db *bun.DB, log *zap.Logger) *PostgresWriter {
	return &PostgresWriter{db: db, log: log}
}

// Write inserts results in batches. Rows already present for the same
// (event, race, horse) key are replaced, so reloading an archive is safe.
func (w *PostgresWriter) Write(ctx context.Context, results []models.Result) error {
	for start := 0; start < len(results); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(results) {
			end = len(results)
		}
		chunk := results[start:end]

		if _, err := w.db.NewInsert().
			Model(&chunk).
			On("CONFLICT (event_id, race_number, horse) DO UPDATE").
			Set("position = EXCLUDED.position").
			Set("distance = EXCLUDED.distance").
			Set("bib_number = EXCLUDED.bib_number").
			Set("pace_string = EXCLUDED.pace_string").
			Set("pace_seconds = EXCLUDED.pace_seconds").
			Set("prize_cents = EXCLUDED.prize_cents").
			Set("odds_decimal = EXCLUDED.odds_decimal").
			Exec(ctx); err != nil {
			return fmt.Errorf("inserting results %d-%d: %w", start, end, err)
		}
	}

	w.log.Info("results written to postgres", zap.Int("rows", len(results)))
	return nil
}
