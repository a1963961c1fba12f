package normalize

import (
	"go.uber.org/zap"

	"github.com/padraicbc/drafdata/models"
)

// Report accounts for every raw row that did not survive normalization and
// for surfaced data-quality anomalies. Drops are mutually exclusive per
// row; anomaly counters describe rows that were kept.
type Report struct {
	Total int `json:"total"`
	Kept  int `json:"kept"`

	DisciplineDrops int `json:"disciplineDrops"`
	CancelledDrops  int `json:"cancelledDrops"`
	CurrencyDrops   int `json:"currencyDrops"`
	DateDrops       int `json:"dateDrops"`

	// BibAnomalies counts rows where both legacy bib columns carried data.
	BibAnomalies int `json:"bibAnomalies"`
	// SuspectPaces counts kept rows whose pace beat the 40 s/km floor
	// without a correction rule covering them. Each needs curation.
	SuspectPaces int `json:"suspectPaces"`
}

// Dropped is the number of raw rows excluded from the clean output.
func (r Report) Dropped() int {
	return r.DisciplineDrops + r.CancelledDrops + r.CurrencyDrops + r.DateDrops
}

// Pipeline sequences filtering, correction rules and field parsers over a
// batch. Per-record work is independent; the registry is read-only.
type Pipeline struct {
	registry *Registry
	log      *zap.Logger
}

// New builds a pipeline with the embedded correction registry.
func New(log *zap.Logger) (*Pipeline, error) {
	reg, err := LoadRegistry()
	if err != nil {
		return nil, err
	}
	log.Info("correction registry loaded", zap.Int("rules", reg.Len()))
	return &Pipeline{registry: reg, log: log}, nil
}

// Run normalizes a full batch of raw rows into clean results. Every raw
// row either maps to exactly one clean record or is accounted for in the
// report; nothing fails the batch.
func (p *Pipeline) Run(raw []models.RawResult) ([]models.Result, Report) {
	rep := Report{Total: len(raw)}
	out := make([]models.Result, 0, len(raw))

	for i := range raw {
		rec := &raw[i]

		discipline, raceDistance, startType := SplitRaceInfo(rec.RaceInfo)
		if !Harness(discipline) {
			rep.DisciplineDrops++
			continue
		}
		if IsCancelled(rec.RaceNumber) {
			rep.CancelledDrops++
			continue
		}

		date, racecourse, err := ParseDateTrack(rec.DateTrack)
		if err != nil {
			// Expected count in a well-formed batch: zero.
			rep.DateDrops++
			p.log.Error("date/track integrity violation, dropping row",
				zap.Int("event", rec.EventID),
				zap.String("race", rec.RaceNumber),
				zap.String("raw", rec.DateTrack))
			continue
		}

		prizeCents, err := ParsePrize(p.registry.Raw(FieldPrize, rec, rec.Prize))
		if err != nil {
			rep.CurrencyDrops++
			p.log.Warn("unrecoverable prize string, dropping cross-contaminated row",
				zap.Int("event", rec.EventID),
				zap.String("race", rec.RaceNumber),
				zap.String("horse", rec.Horse),
				zap.String("raw", rec.Prize))
			continue
		}

		bibRaw, anomaly := MergeBibColumns(rec.BibOld, rec.BibNew)
		if anomaly {
			rep.BibAnomalies++
			p.log.Warn("both bib columns populated",
				zap.Int("event", rec.EventID),
				zap.String("race", rec.RaceNumber),
				zap.String("horse", rec.Horse),
				zap.String("nr", rec.BibOld),
				zap.String("startnummer", rec.BibNew))
		}
		bib := ParseBib(p.registry.Raw(FieldBib, rec, bibRaw))

		pace := NormalizePace(p.registry.Raw(FieldPace, rec, rec.KMTime))
		paceSeconds := p.registry.Derived(FieldPace, rec, PaceSeconds(pace))
		if paceSeconds != nil && *paceSeconds < minPaceSeconds {
			rep.SuspectPaces++
			p.log.Warn("pace below plausibility floor, no correction rule on file",
				zap.Int("event", rec.EventID),
				zap.String("race", rec.RaceNumber),
				zap.String("position", rec.Position),
				zap.Float64("paceSeconds", *paceSeconds))
		}

		distance := p.registry.Derived(FieldDistance, rec,
			ParseDistance(p.registry.Raw(FieldDistance, rec, rec.Distance)))
		odds := p.registry.Derived(FieldOdds, rec,
			ParseOdds(p.registry.Raw(FieldOdds, rec, rec.Odds)))
		raceDistance = p.registry.Derived(FieldRaceDistance, rec, raceDistance)

		out = append(out, models.Result{
			EventID:      rec.EventID,
			Discipline:   discipline,
			RaceDistance: raceDistance,
			StartType:    startType,
			Date:         date,
			Racecourse:   racecourse,
			Time:         rec.Time,
			RaceNumber:   rec.RaceNumber,
			Title:        rec.Title,
			Description:  JoinDescription(rec.Info1, rec.Info2, rec.Info3),
			Position:     rec.Position,
			Horse:        rec.Horse,
			Driver:       rec.Driver,
			Distance:     distance,
			BibNumber:    bib,
			PaceString:   pace,
			PaceSeconds:  paceSeconds,
			PrizeCents:   prizeCents,
			OddsDecimal:  odds,
		})
	}

	rep.Kept = len(out)
	p.log.Info("batch normalized",
		zap.Int("raw", rep.Total),
		zap.Int("clean", rep.Kept),
		zap.Int("dropped", rep.Dropped()),
		zap.Int("bibAnomalies", rep.BibAnomalies),
		zap.Int("suspectPaces", rep.SuspectPaces))
	return out, rep
}
