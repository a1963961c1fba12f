package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/padraicbc/drafdata/models"
)

// RenderRaw converts a clean record back into the source archive's row
// layout. Re-normalizing a rendered row is a fixed point: no drops, no
// field changes. That keeps written CSV archives re-ingestable.
func RenderRaw(r models.Result) models.RawResult {
	return models.RawResult{
		EventID:    r.EventID,
		DateTrack:  renderDateTrack(r.Date, r.Racecourse),
		Time:       r.Time,
		RaceNumber: r.RaceNumber,
		Title:      r.Title,
		Info1:      r.Description,
		RaceInfo:   renderRaceInfo(r.Discipline, r.RaceDistance, r.StartType),
		Position:   r.Position,
		Horse:      r.Horse,
		Driver:     r.Driver,
		Distance:   renderFloat(r.Distance),
		BibNew:     renderInt(r.BibNumber),
		Prize:      FormatPrize(r.PrizeCents),
		Odds:       renderOdds(r.OddsDecimal),
		KMTime:     renderPace(r.PaceString),
	}
}

// FormatPrize renders euro-cents as the source's "€ 1.500,00" layout with
// dot thousands groups and a decimal comma. Zero renders empty, matching
// the archive's "no prize money" convention.
func FormatPrize(cents int) string {
	if cents == 0 {
		return ""
	}

	euros := strconv.Itoa(cents / 100)
	var grouped strings.Builder
	lead := len(euros) % 3
	if lead > 0 {
		grouped.WriteString(euros[:lead])
	}
	for i := lead; i < len(euros); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteString(euros[i : i+3])
	}

	return fmt.Sprintf("€ %s,%02d", grouped.String(), cents%100)
}

func renderDateTrack(date, racecourse string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return t.Format("02-01-06") + ", " + racecourse
}

func renderRaceInfo(discipline string, raceDistance *float64, startType *string) string {
	if raceDistance == nil && startType == nil {
		return discipline
	}
	start := ""
	if startType != nil {
		start = *startType
	}
	return discipline + " - " + renderFloat(raceDistance) + " - " + start
}

func renderFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func renderInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func renderOdds(v *float64) string {
	if v == nil {
		return ""
	}
	return strings.ReplaceAll(strconv.FormatFloat(*v, 'f', -1, 64), ".", ",")
}

func renderPace(pace *string) string {
	if pace == nil {
		return ""
	}
	return *pace
}
