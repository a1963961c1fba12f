package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser failure classes. ErrUnrecoverableRow means the whole row is
// untrusted and must be dropped, not just the field.
var (
	ErrUnrecoverableRow = errors.New("unrecoverable prize format, row cannot be trusted")
	ErrBadDateTrack     = errors.New("date/track does not match DD-MM-YY, <racecourse>")
)

var dateTrackRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{2}, .+`)

// ParseDateTrack splits the "DD-MM-YY, <racecourse>" composite and returns
// an ISO date plus the racecourse name. A mismatch is a data-integrity
// violation: well-formed batches contain zero of them, so the caller drops
// the row loudly rather than guessing.
func ParseDateTrack(s string) (date, racecourse string, err error) {
	if !dateTrackRe.MatchString(s) {
		return "", "", fmt.Errorf("%w: %q", ErrBadDateTrack, s)
	}

	d, course, _ := strings.Cut(s, ", ")
	t, err := time.Parse("02-01-06", d)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrBadDateTrack, s)
	}
	return t.Format("2006-01-02"), course, nil
}

// ParsePrize converts a "€ <amount>" string to integer euro-cents. The
// source writes amounts with dot thousands separators and a comma before
// the two cent digits, so stripping every separator leaves exactly the
// cent count. Empty means no prize money.
//
// Anything else returns ErrUnrecoverableRow: malformed prize strings come
// from a source-side table-rendering failure that cross-contaminates the
// whole row, so no other field on it can be trusted either.
func ParsePrize(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	symbol, amount, ok := strings.Cut(s, " ")
	if !ok || symbol == "" || amount == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnrecoverableRow, s)
	}

	digits := strings.NewReplacer(".", "", ",", "").Replace(amount)
	cents, err := strconv.Atoi(digits)
	if err != nil || cents < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnrecoverableRow, s)
	}
	return cents, nil
}

// ParseOdds parses a decimal-comma tote odds string. Empty means no odds
// were recorded. A leading-comma fragment (",8") lost its integer part in
// transcription and is unrecoverable. A parsed value of exactly 0 is
// physically impossible as a quote and is remapped to null; everything
// else, including values squashed against the source's two-digit display
// ceiling, is left as given.
func ParseOdds(s string) *float64 {
	if s == "" || strings.HasPrefix(s, ",") {
		return nil
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || v == 0 {
		return nil
	}
	return &v
}

// ParseDistance parses the per-horse distance in metres. Empty or
// non-numeric strings stay null; known-bad individual values are handled
// by correction rules, never by guessing here.
func ParseDistance(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// JoinDescription merges the up-to-three free-text description columns
// into one field, skipping blanks.
func JoinDescription(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			kept = append(kept, t)
		}
	}
	return strings.Join(kept, "; ")
}
