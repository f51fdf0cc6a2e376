package schema

import (
	"fmt"

	"github.com/bryancraven/rock-photo/internal/result"
)

// Kind tags the semantic type of a field in a result entity.
type Kind int

const (
	KindEnum Kind = iota
	KindString
	KindFloat
	KindInt
	KindStringList
)

// Field declares one named field of a result entity. For KindEnum fields,
// Enum is the closed set of permitted tokens; a conforming response must not
// use any value outside it. Min/Max bound numeric fields when set.
type Field struct {
	Name string
	Kind Kind
	Enum []string
	Desc string
	Min  *float64
	Max  *float64
}

// Variant bundles the complete vocabulary and entity shapes of one analyzer.
// The same field tables drive prompt rendering, the structured-output schema
// sent to the model, response validation, and report formatting, so the
// instructions and the machine-checkable shape can never diverge.
type Variant struct {
	Name            string // CLI-facing name, e.g. "quick"
	Title           string // report heading
	FilePrefix      string // saved-file name prefix
	LocationField   string // summary field recording the location mode
	Intro           string // prompt framing text
	SummaryGuidance string // prompt instructions for the summary block

	RockFields    []Field
	SummaryFields []Field
	ExtraFields   []Field // top-level fields beside summary and rocks
}

// CategoricalFields returns the rock fields restricted to closed vocabularies.
func (v *Variant) CategoricalFields() []Field {
	var out []Field
	for _, f := range v.RockFields {
		if f.Kind == KindEnum {
			out = append(out, f)
		}
	}
	return out
}

// ByName looks up a variant by its CLI-facing name.
func ByName(name string) (*Variant, error) {
	switch name {
	case Quick.Name:
		return Quick, nil
	case Geological.Name:
		return Geological, nil
	}
	return nil, fmt.Errorf("unknown analyzer variant %q", name)
}

// ResponseSchema renders the variant's analysis-result shape in the form the
// generateContent structured-output feature expects.
func (v *Variant) ResponseSchema() map[string]any {
	props := map[string]any{
		"summary": objectSchema(v.SummaryFields),
		"rocks": map[string]any{
			"type":  "ARRAY",
			"items": objectSchema(v.RockFields),
		},
	}
	required := []string{"summary", "rocks"}
	for _, f := range v.ExtraFields {
		props[f.Name] = fieldSchema(f)
		required = append(required, f.Name)
	}
	return map[string]any{
		"type":       "OBJECT",
		"properties": props,
		"required":   required,
	}
}

func objectSchema(fields []Field) map[string]any {
	props := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		props[f.Name] = fieldSchema(f)
		required = append(required, f.Name)
	}
	return map[string]any{
		"type":       "OBJECT",
		"properties": props,
		"required":   required,
	}
}

func fieldSchema(f Field) map[string]any {
	switch f.Kind {
	case KindEnum:
		return map[string]any{"type": "STRING", "enum": f.Enum}
	case KindFloat:
		return map[string]any{"type": "NUMBER"}
	case KindInt:
		return map[string]any{"type": "INTEGER"}
	case KindStringList:
		return map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}}
	default:
		return map[string]any{"type": "STRING"}
	}
}

// Validate checks a parsed analysis document against the variant's
// vocabularies and numeric ranges. Nonconformance is reportable but not
// fatal: violations are returned for logging and the document is kept as-is.
func Validate(v *Variant, doc result.Document) []string {
	var violations []string

	violations = append(violations, checkFields("summary", v.SummaryFields, doc.Summary())...)
	for i, rock := range doc.Rocks() {
		violations = append(violations, checkFields(fmt.Sprintf("rocks[%d]", i), v.RockFields, rock)...)
	}
	return violations
}

func checkFields(path string, fields []Field, doc result.Document) []string {
	var violations []string
	for _, f := range fields {
		switch f.Kind {
		case KindEnum:
			val := doc.String(f.Name, "")
			if val == "" {
				continue
			}
			if !contains(f.Enum, val) {
				violations = append(violations,
					fmt.Sprintf("%s.%s: %q is not in the permitted vocabulary", path, f.Name, val))
			}
		case KindFloat, KindInt:
			val, ok := doc.Number(f.Name)
			if !ok {
				continue
			}
			if f.Min != nil && val < *f.Min {
				violations = append(violations,
					fmt.Sprintf("%s.%s: %v is below the minimum %v", path, f.Name, val, *f.Min))
			}
			if f.Max != nil && val > *f.Max {
				violations = append(violations,
					fmt.Sprintf("%s.%s: %v is above the maximum %v", path, f.Name, val, *f.Max))
			}
		}
	}
	return violations
}

func contains(set []string, val string) bool {
	for _, s := range set {
		if s == val {
			return true
		}
	}
	return false
}

func bound(v float64) *float64 { return &v }
