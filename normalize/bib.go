package normalize

import "strconv"

// MergeBibColumns unifies the two historical bib-number columns ("nr" on
// old pages, "startnummer" on newer ones). At most one is expected to be
// populated; when both are, anomaly is true and the old column wins so the
// caller can surface the violation without losing the row. There is no
// documented recovery rule for that case, so it is reported, not resolved.
func MergeBibColumns(old, cur string) (raw string, anomaly bool) {
	switch {
	case old == "":
		return cur, false
	case cur == "":
		return old, false
	default:
		return old, true
	}
}

// ParseBib parses the unified bib column. Empty and the letter sentinels
// for withdrawn or unknown starters give nil. Letter-for-digit confusions
// ("1O" for "10") are fixed by targeted pre-parse correction rules, never
// by fuzzy substitution here: an unrelated anomalous token must stay
// visible as null, not get silently reinterpreted.
func ParseBib(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}
