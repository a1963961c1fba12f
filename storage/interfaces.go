// Package storage persists normalized results. Two writers ship: Postgres
// for the queryable dataset behind the API, and CSV in the source column
// layout so written archives can be re-read by ingest.
package storage

import (
	"context"

	"github.com/padraicbc/drafdata/models"
)

// Writer persists one batch of normalized results.
type Writer interface {
	Write(ctx context.Context, results []models.Result) error
}
