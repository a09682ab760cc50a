package report

import (
	"fmt"
	"math"
)

// FieldError is one validation failure. Section is the identifier of the
// owning form section, which the frontend uses to focus the right category.
type FieldError struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

// Rule validates one non-excluded field of the registry.
type Rule struct {
	Field Field
}

// Schema is the exclusion-aware validation ruleset for a full report.
type Schema struct {
	rules []Rule
}

// BuildSchema walks the field registry and emits one rule per field that is
// neither optional nor switched off by the certificate type's exclusion
// list. The same exclusion predicate drives form rendering, so a hidden
// field is never demanded.
func BuildSchema(excludedFields []string) Schema {
	var rules []Rule
	for _, sec := range Sections {
		for _, f := range sec.Fields {
			if f.Optional {
				continue
			}
			if Excluded(excludedFields, f.Name) {
				continue
			}
			rules = append(rules, Rule{Field: f})
		}
	}
	return Schema{rules: rules}
}

// Len returns the number of rules in the schema.
func (s Schema) Len() int {
	return len(s.rules)
}

// Covers reports whether the schema holds a rule for the field.
func (s Schema) Covers(fieldName string) bool {
	for _, r := range s.rules {
		if r.Field.Name == fieldName {
			return true
		}
	}
	return false
}

// Validate checks the aggregated report values against every rule whose
// visibility condition holds. It reports, never corrects: the caller
// decides what to do with the failures.
func (s Schema) Validate(values Values) []FieldError {
	var errs []FieldError
	for _, r := range s.rules {
		if !Visible(r.Field, values) {
			continue
		}
		if msg := checkField(r.Field, values[r.Field.Name]); msg != "" {
			errs = append(errs, FieldError{Section: r.Field.Section, Message: msg})
		}
	}
	return errs
}

func checkField(f Field, v any) string {
	switch f.Kind {
	case KindText, KindChoice, KindDate:
		if s, _ := v.(string); s == "" {
			return fmt.Sprintf("%s is required", f.Name)
		}
	case KindScore:
		n, ok := asNumber(v)
		if !ok {
			return fmt.Sprintf("%s is required", f.Name)
		}
		if n != math.Trunc(n) || n < 0 || n > 10 {
			return fmt.Sprintf("%s must be an integer between 0 and 10", f.Name)
		}
	case KindNumber:
		n, ok := asNumber(v)
		if !ok {
			return fmt.Sprintf("%s is required", f.Name)
		}
		if n < 0 {
			return fmt.Sprintf("%s must not be negative", f.Name)
		}
	case KindMulti, KindImages, KindDocuments:
		if listLen(v) == 0 {
			return fmt.Sprintf("%s is required", f.Name)
		}
	case KindDimensions:
		sub, _ := asMap(v)
		for _, path := range f.SubPaths {
			if sub == nil || emptyValue(sub[path]) {
				return fmt.Sprintf("%s.%s is required", f.Name, path)
			}
		}
	}
	return ""
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Values:
		return m, true
	default:
		return nil, false
	}
}

func listLen(v any) int {
	switch l := v.(type) {
	case []string:
		return len(l)
	case []any:
		return len(l)
	default:
		return 0
	}
}
