package normalize

import "testing"

func TestMergeBibColumns(t *testing.T) {
	tests := []struct {
		old, cur string
		want     string
		anomaly  bool
	}{
		{"", "", "", false},
		{"7", "", "7", false},
		{"", "7", "7", false},
		{"3", "5", "3", true}, // invariant violation, old column wins
	}

	for _, tt := range tests {
		raw, anomaly := MergeBibColumns(tt.old, tt.cur)
		if raw != tt.want || anomaly != tt.anomaly {
			t.Errorf("MergeBibColumns(%q, %q) = (%q, %v); want (%q, %v)",
				tt.old, tt.cur, raw, anomaly, tt.want, tt.anomaly)
		}
	}
}

func TestParseBib(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{"", nil},
		{"7", i(7)},
		{"12", i(12)},
		{"A", nil},  // withdrawn/unknown sentinel
		{"1O", nil}, // letter-for-digit fault: rule territory, not parsing
	}

	for _, tt := range tests {
		got := ParseBib(tt.raw)
		switch {
		case got == nil && tt.want == nil:
		case got == nil || tt.want == nil || *got != *tt.want:
			t.Errorf("ParseBib(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func i(v int) *int { return &v }
