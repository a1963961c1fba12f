// Package normalize turns raw scraped result rows into clean, typed records.
// It is a pure batch transformation: per-field parsers, a discipline and
// cancellation filter, and a hand-curated correction registry, sequenced by
// Pipeline. No state is carried across records.
package normalize

import (
	"strconv"
	"strings"

	"github.com/padraicbc/drafdata/models"
)

// cancellationCodes are race numbers repurposed by the source to mark
// administratively voided races. Those rows all share the fixed
// "koers afgelast" title and carry no result data.
var cancellationCodes = map[string]struct{}{
	"0":  {},
	"20": {},
	"21": {},
	"22": {},
	"23": {},
	"24": {},
	"25": {},
	"26": {},
	"27": {},
	"28": {},
	"29": {},
}

// IsCancelled reports whether a race number is a cancellation code.
func IsCancelled(raceNumber string) bool {
	_, ok := cancellationCodes[raceNumber]
	return ok
}

// SplitRaceInfo breaks the "Discipline - Distance - StartType" composite.
// Older pages only carry a "Discipline - ..." prefix; for those only the
// discipline token is trusted and distance and start type stay null.
// A distance token that fails to parse also stays null, the row survives.
func SplitRaceInfo(s string) (discipline string, raceDistance *float64, startType *string) {
	parts := strings.Split(s, " - ")
	discipline = strings.TrimSpace(parts[0])
	if len(parts) < 3 {
		return discipline, nil, nil
	}

	if d, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
		raceDistance = &d
	}
	if st := strings.TrimSpace(parts[2]); st != "" {
		startType = &st
	}
	return discipline, raceDistance, startType
}

// Harness reports whether the row belongs to the harness-racing dataset.
// Flat-racing rows ("Rensport") use the draw/margin/handicap columns that
// mean nothing for harness races and are dropped wholesale.
func Harness(discipline string) bool {
	return discipline == models.DisciplineHarness
}
