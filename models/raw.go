package models

// RawResult is one scraped result row, one horse in one race, exactly as it
// appears in the source archive. All fields except EventID are kept as
// strings; nothing is trusted until the normalize pipeline has run.
type RawResult struct {
	// EventID identifies the race meeting the row was scraped from.
	EventID int

	// DateTrack is the composite "DD-MM-YY, <racecourse>" string.
	DateTrack string

	// Time is the advertised start time of the race.
	Time string

	// RaceNumber is a string because cancelled races reuse it as a code.
	RaceNumber string

	Title string
	Info1 string
	Info2 string
	Info3 string

	// RaceInfo is "Discipline - Distance - StartType", or the legacy
	// "Discipline - ..." form on older pages.
	RaceInfo string

	Position string
	Horse    string
	Driver   string

	// Distance the horse actually ran (handicap starts differ per horse).
	Distance string

	// BibOld and BibNew are the two historical bib-number columns ("nr"
	// and "startnummer"). At most one should be populated per row.
	BibOld string
	BibNew string

	// Draw, Margin and Handicap only carry data for flat races and are
	// dropped together with those rows.
	Draw     string
	Margin   string
	Handicap string

	// Prize is "€ <amount>" with dot thousands and comma decimals.
	Prize string

	// Odds is the final tote odds with a decimal comma.
	Odds string

	// KMTime is the réduction kilométrique, canonically "M.SS,D".
	KMTime string
}
