package storage

import (
	"testing"

	"github.com/padraicbc/drafdata/normalize"
)

func TestFormatPrizeRoundTrip(t *testing.T) {
	tests := []struct {
		cents int
		want  string
	}{
		{0, ""},
		{9000, "€ 90,00"},
		{45000, "€ 450,00"},
		{150000, "€ 1.500,00"},
		{1234500, "€ 12.345,00"},
		{123456789, "€ 1.234.567,89"},
	}

	for _, tt := range tests {
		got := FormatPrize(tt.cents)
		if got != tt.want {
			t.Errorf("FormatPrize(%d) = %q; want %q", tt.cents, got, tt.want)
			continue
		}
		back, err := normalize.ParsePrize(got)
		if err != nil {
			t.Errorf("ParsePrize(%q): %v", got, err)
			continue
		}
		if back != tt.cents {
			t.Errorf("round trip %d -> %q -> %d", tt.cents, got, back)
		}
	}
}
