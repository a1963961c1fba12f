// Package ingest reads scraped result batches from CSV files and maps the
// archive's fixed column set onto models.RawResult. It does no cleaning;
// that is the normalize package's job.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/padraicbc/drafdata/models"
)

// columns is the header set every scraped batch carries. "nr" and
// "startnummer" are the two historical bib columns; "band", "lengten" and
// "handicap" only mean anything for flat races.
var columns = []string{
	"evenement", "datum", "tijd", "koers", "titel",
	"info1", "info2", "info3", "koersinfo",
	"plaats", "paard", "rijder", "afstand",
	"nr", "startnummer", "band", "lengten", "handicap",
	"prijs", "cote", "kmtijd",
}

// LoadDir reads every *.csv batch in dir in lexical order and concatenates
// the rows, preserving file order so the pipeline sees one ordered record
// sequence.
func LoadDir(dir string, log *zap.Logger) ([]models.RawResult, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no csv batches found in %s", dir)
	}
	sort.Strings(paths)

	var all []models.RawResult
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		rows, err := ReadBatch(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		log.Info("batch read", zap.String("file", filepath.Base(path)), zap.Int("rows", len(rows)))
		all = append(all, rows...)
	}
	return all, nil
}

// ReadBatch parses one CSV batch. The header must contain every expected
// column; extra columns are ignored. Row length mismatches and a
// non-integer event id are hard errors, not data to clean around.
func ReadBatch(r io.Reader) ([]models.RawResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range columns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q in batch header", name)
		}
	}

	var out []models.RawResult
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(row) < len(header) {
			return nil, fmt.Errorf("line %d: %d fields, header has %d", line, len(row), len(header))
		}

		get := func(name string) string { return row[idx[name]] }

		eventID, err := strconv.Atoi(get("evenement"))
		if err != nil {
			return nil, fmt.Errorf("line %d: event id %q: %w", line, get("evenement"), err)
		}

		out = append(out, models.RawResult{
			EventID:    eventID,
			DateTrack:  get("datum"),
			Time:       get("tijd"),
			RaceNumber: get("koers"),
			Title:      get("titel"),
			Info1:      get("info1"),
			Info2:      get("info2"),
			Info3:      get("info3"),
			RaceInfo:   get("koersinfo"),
			Position:   get("plaats"),
			Horse:      get("paard"),
			Driver:     get("rijder"),
			Distance:   get("afstand"),
			BibOld:     get("nr"),
			BibNew:     get("startnummer"),
			Draw:       get("band"),
			Margin:     get("lengten"),
			Handicap:   get("handicap"),
			Prize:      get("prijs"),
			Odds:       get("cote"),
			KMTime:     get("kmtijd"),
		})
	}
	return out, nil
}
