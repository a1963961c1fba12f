package models

import "github.com/uptrace/bun"

// Disciplines found in the source taxonomy. Only harness races survive
// normalization.
const (
	DisciplineHarness = "Drafsport"
	DisciplineFlat    = "Rensport"
)

// Result holds one normalized harness-race result for a single horse.
type Result struct {
	bun.BaseModel `bun:"table:results,alias:r"`

	ID           int      `bun:"id,pk,autoincrement" json:"id"`
	EventID      int      `bun:"event_id,notnull" json:"eventID"`
	Discipline   string   `bun:"discipline,notnull" json:"discipline"`
	RaceDistance *float64 `bun:"race_distance" json:"raceDistance,omitempty"`
	StartType    *string  `bun:"start_type" json:"startType,omitempty"`
	Date         string   `bun:"date,notnull,type:date" json:"date"`
	Racecourse   string   `bun:"racecourse,notnull" json:"racecourse"`
	Time         string   `bun:"time,notnull" json:"time"`
	RaceNumber   string   `bun:"race_number,notnull" json:"raceNumber"`
	Title        string   `bun:"title,notnull" json:"title"`
	Description  string   `bun:"description" json:"description,omitempty"`
	Position     string   `bun:"position,notnull" json:"position"`
	Horse        string   `bun:"horse,notnull" json:"horse"`
	Driver       string   `bun:"driver,notnull" json:"driver"`
	Distance     *float64 `bun:"distance" json:"distance,omitempty"`
	BibNumber    *int     `bun:"bib_number" json:"bibNumber,omitempty"`
	PaceString   *string  `bun:"pace_string" json:"paceString,omitempty"`
	PaceSeconds  *float64 `bun:"pace_seconds" json:"paceSeconds,omitempty"`
	PrizeCents   int      `bun:"prize_cents,notnull,default:0" json:"prizeCents"`
	OddsDecimal  *float64 `bun:"odds_decimal" json:"oddsDecimal,omitempty"`
}
