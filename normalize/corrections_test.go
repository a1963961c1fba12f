package normalize

import (
	"testing"

	"github.com/padraicbc/drafdata/models"
)

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if reg.Len() == 0 {
		t.Fatal("registry is empty")
	}
}

func TestRegistryPostNullsPace(t *testing.T) {
	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	rec := &models.RawResult{EventID: 29254, RaceNumber: "8", Position: "5"}
	if got := reg.Derived(FieldPace, rec, f(39.8)); got != nil {
		t.Errorf("curated record should have pace nulled, got %v", *got)
	}

	// Same race, different position: rule must not fire.
	other := &models.RawResult{EventID: 29254, RaceNumber: "8", Position: "1"}
	if got := reg.Derived(FieldPace, other, f(78.2)); got == nil || *got != 78.2 {
		t.Errorf("uncurated record changed: got %v", fv(got))
	}
}

func TestRegistryPreReplacesBib(t *testing.T) {
	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	rec := &models.RawResult{EventID: 30127, RaceNumber: "5", Horse: "Onyx Transs R"}
	if got := reg.Raw(FieldBib, rec, "1O"); got != "10" {
		t.Errorf("Raw bib override = %q; want \"10\"", got)
	}
}

func TestRegistryNoOpOnAbsentTarget(t *testing.T) {
	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}

	rec := &models.RawResult{EventID: 1, RaceNumber: "1", Horse: "Nobody", Position: "9"}
	if got := reg.Raw(FieldBib, rec, "4"); got != "4" {
		t.Errorf("Raw on absent target = %q; want \"4\"", got)
	}
	if got := reg.Derived(FieldDistance, rec, f(2100)); got == nil || *got != 2100 {
		t.Errorf("Derived on absent target = %v; want 2100", fv(got))
	}
}

func TestLoadRegistryRejectsBadRules(t *testing.T) {
	saved := correctionsYAML
	defer func() { correctionsYAML = saved }()

	cases := []string{
		"rules:\n  - event: 1\n    race: \"1\"\n    field: saddle\n    phase: post\n",
		"rules:\n  - event: 1\n    race: \"1\"\n    field: pace\n    phase: pre\n",
		"rules:\n  - event: 1\n    race: \"1\"\n    field: pace\n    phase: post\n    value: \"fast\"\n",
		"rules:\n  - event: 1\n    race: \"1\"\n    field: pace\n    phase: during\n",
	}
	for _, doc := range cases {
		correctionsYAML = []byte(doc)
		if _, err := LoadRegistry(); err == nil {
			t.Errorf("LoadRegistry accepted invalid table:\n%s", doc)
		}
	}
}
