package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/padraicbc/drafdata/models"
)

// header matches the scraped archive's column set so ingest can read the
// files this writer produces.
var header = []string{
	"evenement", "datum", "tijd", "koers", "titel",
	"info1", "info2", "info3", "koersinfo",
	"plaats", "paard", "rijder", "afstand",
	"nr", "startnummer", "band", "lengten", "handicap",
	"prijs", "cote", "kmtijd",
}

// CSVWriter writes normalized results as a CSV archive in the source
// column layout.
type CSVWriter struct {
	path string
	log  *zap.Logger
}

// NewCSVWriter creates a writer that will write to path, replacing any
// existing file.
func NewCSVWriter(path string, log *zap.Logger) *CSVWriter {
	return &CSVWriter{path: path, log: log}
}

// Write renders every result back into source format and writes the file.
func (w *CSVWriter) Write(ctx context.Context, results []models.Result) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", w.path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, r := range results {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw := RenderRaw(r)
		row := []string{
			strconv.Itoa(raw.EventID),
			raw.DateTrack,
			raw.Time,
			raw.RaceNumber,
			raw.Title,
			raw.Info1,
			raw.Info2,
			raw.Info3,
			raw.RaceInfo,
			raw.Position,
			raw.Horse,
			raw.Driver,
			raw.Distance,
			raw.BibOld,
			raw.BibNew,
			raw.Draw,
			raw.Margin,
			raw.Handicap,
			raw.Prize,
			raw.Odds,
			raw.KMTime,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", w.path, err)
	}

	w.log.Info("results written to csv", zap.String("file", w.path), zap.Int("rows", len(results)))
	return nil
}
