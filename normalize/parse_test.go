package normalize

import (
	"errors"
	"testing"
)

func TestParsePrize(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"€ 1.500,00", 150000},
		{"€ 450,00", 45000},
		{"€ 12.345,00", 1234500},
		{"€ 90,00", 9000},
	}

	for _, tt := range tests {
		got, err := ParsePrize(tt.raw)
		if err != nil {
			t.Errorf("ParsePrize(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePrize(%q) = %d; want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParsePrizeUnrecoverable(t *testing.T) {
	for _, raw := range []string{"1.500,00", "€", "€ ", "€ 1e500", "€ Wolvega", "gratis"} {
		if _, err := ParsePrize(raw); !errors.Is(err, ErrUnrecoverableRow) {
			t.Errorf("ParsePrize(%q) error = %v; want ErrUnrecoverableRow", raw, err)
		}
	}
}

func TestParseOdds(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{"", nil},
		{",8", nil},
		{"0", nil},
		{"7,4", f(7.4)},
		{"12", f(12)},
		{"99,9", f(99.9)},
		{"n.g.", nil},
	}

	for _, tt := range tests {
		got := ParseOdds(tt.raw)
		if !eqf(got, tt.want) {
			t.Errorf("ParseOdds(%q) = %v; want %v", tt.raw, fv(got), fv(tt.want))
		}
	}
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{"", nil},
		{"2100", f(2100)},
		{"2625", f(2625)},
		{"onbekend", nil},
	}

	for _, tt := range tests {
		if got := ParseDistance(tt.raw); !eqf(got, tt.want) {
			t.Errorf("ParseDistance(%q) = %v; want %v", tt.raw, fv(got), fv(tt.want))
		}
	}
}

func TestParseDateTrack(t *testing.T) {
	date, course, err := ParseDateTrack("03-08-19, Wolvega")
	if err != nil {
		t.Fatalf("ParseDateTrack: %v", err)
	}
	if date != "2019-08-03" {
		t.Errorf("date = %q; want 2019-08-03", date)
	}
	if course != "Wolvega" {
		t.Errorf("racecourse = %q; want Wolvega", course)
	}
}

func TestParseDateTrackViolation(t *testing.T) {
	for _, raw := range []string{"", "Wolvega", "3-8-19, Wolvega", "03-08-19,Wolvega", "03-08-19, "} {
		if _, _, err := ParseDateTrack(raw); !errors.Is(err, ErrBadDateTrack) {
			t.Errorf("ParseDateTrack(%q) error = %v; want ErrBadDateTrack", raw, err)
		}
	}
}

func TestJoinDescription(t *testing.T) {
	if got := JoinDescription("Gold Cup", "", " serie A "); got != "Gold Cup; serie A" {
		t.Errorf("JoinDescription = %q", got)
	}
	if got := JoinDescription("", "", ""); got != "" {
		t.Errorf("JoinDescription of blanks = %q; want empty", got)
	}
}

// test helpers shared across the package's tests

func f(v float64) *float64 { return &v }

func eqf(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fv(p *float64) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
