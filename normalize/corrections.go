package normalize

import (
	_ "embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/padraicbc/drafdata/models"
)

//go:embed corrections.yaml
var correctionsYAML []byte

// Phase says when a rule runs relative to the generic parser for its field.
type Phase string

const (
	// PhasePre replaces the raw string before the generic parser sees it.
	PhasePre Phase = "pre"
	// PhasePost nulls, or with a value replaces, the derived value the
	// generic parser produced.
	PhasePost Phase = "post"
)

// Field names a correctable column.
type Field string

const (
	FieldPace         Field = "pace"
	FieldBib          Field = "bib"
	FieldDistance     Field = "distance"
	FieldOdds         Field = "odds"
	FieldPrize        Field = "prize"
	FieldRaceDistance Field = "race_distance"
)

var knownFields = map[Field]struct{}{
	FieldPace:         {},
	FieldBib:          {},
	FieldDistance:     {},
	FieldOdds:         {},
	FieldPrize:        {},
	FieldRaceDistance: {},
}

// Rule is one curated override for a single known-bad source record,
// addressed by event id and race number, optionally narrowed by horse
// and/or finishing position. Rules are idempotent and a rule whose target
// is absent from the batch is a no-op, so the registry stays valid as
// upstream filtering changes which rows survive.
type Rule struct {
	Event    int     `yaml:"event"`
	Race     string  `yaml:"race"`
	Horse    string  `yaml:"horse,omitempty"`
	Position string  `yaml:"position,omitempty"`
	Field    Field   `yaml:"field"`
	Phase    Phase   `yaml:"phase"`
	Value    *string `yaml:"value,omitempty"`
	Note     string  `yaml:"note,omitempty"`

	// num caches the parsed post-phase replacement.
	num *float64
}

func (r *Rule) matches(rec *models.RawResult) bool {
	if r.Event != rec.EventID || r.Race != rec.RaceNumber {
		return false
	}
	if r.Horse != "" && r.Horse != rec.Horse {
		return false
	}
	if r.Position != "" && r.Position != rec.Position {
		return false
	}
	return true
}

// Registry holds the static correction-rule table. Read-only after load;
// it is the only resource the pipeline shares across records.
type Registry struct {
	rules []Rule
}

// LoadRegistry parses and validates the embedded corrections table.
func LoadRegistry() (*Registry, error) {
	var doc struct {
		Rules []Rule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(correctionsYAML, &doc); err != nil {
		return nil, fmt.Errorf("corrections table: %w", err)
	}

	for i := range doc.Rules {
		r := &doc.Rules[i]
		if _, ok := knownFields[r.Field]; !ok {
			return nil, fmt.Errorf("corrections table: rule %d targets unknown field %q", i, r.Field)
		}
		switch r.Phase {
		case PhasePre:
			if r.Value == nil {
				return nil, fmt.Errorf("corrections table: pre rule %d for %q has no replacement value", i, r.Field)
			}
		case PhasePost:
			if r.Value != nil {
				v, err := strconv.ParseFloat(*r.Value, 64)
				if err != nil {
					return nil, fmt.Errorf("corrections table: post rule %d value %q is not numeric", i, *r.Value)
				}
				r.num = &v
			}
		default:
			return nil, fmt.Errorf("corrections table: rule %d has unknown phase %q", i, r.Phase)
		}
	}

	return &Registry{rules: doc.Rules}, nil
}

// Len reports the number of loaded rules.
func (g *Registry) Len() int { return len(g.rules) }

// Raw returns the pre-parse replacement for field on this record, or the
// current raw value when no rule targets it.
func (g *Registry) Raw(f Field, rec *models.RawResult, current string) string {
	for i := range g.rules {
		r := &g.rules[i]
		if r.Phase == PhasePre && r.Field == f && r.matches(rec) {
			return *r.Value
		}
	}
	return current
}

// Derived applies post-parse rules for field to a derived value. A rule
// without a value nulls it; a rule with a value replaces it. With no
// matching rule the generic parser's result passes through untouched.
func (g *Registry) Derived(f Field, rec *models.RawResult, v *float64) *float64 {
	for i := range g.rules {
		r := &g.rules[i]
		if r.Phase == PhasePost && r.Field == f && r.matches(rec) {
			return r.num
		}
	}
	return v
}
