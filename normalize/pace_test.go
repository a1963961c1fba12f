package normalize

import "testing"

func TestNormalizePace(t *testing.T) {
	tests := []struct {
		raw  string
		want *string
	}{
		{"", nil},
		{"GT", nil},
		{"gto", nil},
		{"1.20,9", s("1.20,9")},
		{"1,20.9", s("1.20,9")}, // transposed separators
		{"1,20,9", s("1.20,9")},
		{"1.18", s("1.18")}, // truncated, kept as given
		{"0.00,0", s("0.00,0")},
	}

	for _, tt := range tests {
		got := NormalizePace(tt.raw)
		if !eqs(got, tt.want) {
			t.Errorf("NormalizePace(%q) = %v; want %v", tt.raw, sv(got), sv(tt.want))
		}
	}
}

func TestPaceSeconds(t *testing.T) {
	tests := []struct {
		pace *string
		want *float64
	}{
		{nil, nil},
		{s("1.20,9"), f(80.9)},
		{s("1.18,4"), f(78.4)},
		{s("2.05,0"), f(125)},
		{s("1.18"), nil},       // non-canonical never converts
		{s("0.00,0"), nil},     // zero time is impossible
		{s("0.39,8"), f(39.8)}, // below the floor but converted; curation decides
	}

	for _, tt := range tests {
		got := PaceSeconds(tt.pace)
		if !eqf(got, tt.want) {
			t.Errorf("PaceSeconds(%v) = %v; want %v", sv(tt.pace), fv(got), fv(tt.want))
		}
	}
}

func s(v string) *string { return &v }

func eqs(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sv(p *string) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
