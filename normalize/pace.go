package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Canonical réduction kilométrique layout: one minute digit, dot, two
// second digits, comma, one decisecond digit. "1.20,9" is 1min 20.9s/km.
var paceCanonicalRe = regexp.MustCompile(`^\d\.\d{2},\d$`)

// A comma directly followed by a digit inside a 6-char pace string marks
// the transposed-separator data-entry fault ("1,20.9").
var paceCommaDigitRe = regexp.MustCompile(`,\d`)

// paceSentinels mean "no time taken" in the source. Case-sensitive: the
// archive only ever uses these two exact spellings.
var paceSentinels = map[string]struct{}{
	"GT":  {},
	"gto": {},
}

// minPaceSeconds is the plausibility floor: nothing trots faster than
// 40 s/km. Values below it are never nulled generically, only through an
// explicit correction rule for the exact record.
const minPaceSeconds = 40

// NormalizePace recovers the canonical 6-character pace layout where it
// can. Sentinels and empty input give nil. A 6-character string with the
// transposed-separator fault is repaired by rewriting every comma to a dot
// and the dot before the final digit back to a comma. Anything else, such
// as a truncated "1.18", is returned as given so curators can see what a
// correction rule would need to target.
func NormalizePace(s string) *string {
	if s == "" {
		return nil
	}
	if _, ok := paceSentinels[s]; ok {
		return nil
	}
	if paceCanonicalRe.MatchString(s) {
		return &s
	}

	if len(s) == 6 && paceCommaDigitRe.MatchString(s) {
		fixed := strings.ReplaceAll(s, ",", ".")
		if fixed[len(fixed)-2] == '.' {
			fixed = fixed[:len(fixed)-2] + "," + fixed[len(fixed)-1:]
		}
		if paceCanonicalRe.MatchString(fixed) {
			return &fixed
		}
	}

	return &s
}

// PaceSeconds converts a canonical pace string to seconds per kilometre:
// minutes before the first dot, then the remainder with its comma read as
// a decimal point. Non-canonical strings and a computed zero give nil; a
// zero time is a data fault, not a result.
func PaceSeconds(pace *string) *float64 {
	if pace == nil || !paceCanonicalRe.MatchString(*pace) {
		return nil
	}

	minPart, rest, _ := strings.Cut(*pace, ".")
	minutes, err := strconv.Atoi(minPart)
	if err != nil {
		return nil
	}
	seconds, err := strconv.ParseFloat(strings.ReplaceAll(rest, ",", "."), 64)
	if err != nil {
		return nil
	}

	v := float64(minutes)*60 + seconds
	if v == 0 {
		return nil
	}
	return &v
}
