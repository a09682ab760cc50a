package report_test

import (
	"strings"
	"testing"

	"github.com/ChronoCert/ChronoCert-Backend/src/report"
)

// excludeAllBut returns an exclusion list covering every registered field
// except the given ones, isolating a handful of rules.
func excludeAllBut(t *testing.T, keep ...string) []string {
	t.Helper()
	kept := map[string]bool{}
	for _, k := range keep {
		kept[k] = true
	}
	var excluded []string
	for _, name := range report.AllFieldNames() {
		if !kept[name] {
			excluded = append(excluded, name)
		}
	}
	return excluded
}

func requiredFieldCount() int {
	n := 0
	for _, sec := range report.Sections {
		for _, f := range sec.Fields {
			if !f.Optional {
				n++
			}
		}
	}
	return n
}

func TestBuildSchemaNoExclusionsCoversEveryField(t *testing.T) {
	schema := report.BuildSchema(nil)

	if schema.Len() != requiredFieldCount() {
		t.Fatalf("schema has %d rules, want %d", schema.Len(), requiredFieldCount())
	}
	if !schema.Covers("case_material") {
		t.Fatal("schema should cover case_material")
	}
	if !schema.Covers("bracelet_score") {
		t.Fatal("schema should cover bracelet_score")
	}
}

func TestBuildSchemaAllExcludedCoversNothing(t *testing.T) {
	schema := report.BuildSchema(report.AllFieldNames())

	if schema.Len() != 0 {
		t.Fatalf("schema should be empty, has %d rules", schema.Len())
	}
	if errs := schema.Validate(report.Values{}); len(errs) != 0 {
		t.Fatalf("empty schema produced errors: %v", errs)
	}
}

func TestBuildSchemaSectionExclusion(t *testing.T) {
	schema := report.BuildSchema([]string{"case_back"})

	if schema.Covers("case_back_type") {
		t.Fatal("excluded section field should not be covered")
	}
	if !schema.Covers("case_material") {
		t.Fatal("sibling section field should still be covered")
	}
}

func TestScoreBoundaries(t *testing.T) {
	schema := report.BuildSchema(excludeAllBut(t, "case_score"))

	for _, tc := range []struct {
		score any
		valid bool
	}{
		{-1, false},
		{0, true},
		{10, true},
		{11, false},
		{7.5, false},
		{float64(7), true},
		{"7", false},
		{nil, false},
	} {
		errs := schema.Validate(report.Values{"case_score": tc.score})
		if tc.valid && len(errs) != 0 {
			t.Fatalf("score %v should pass, got %v", tc.score, errs)
		}
		if !tc.valid && len(errs) == 0 {
			t.Fatalf("score %v should fail validation", tc.score)
		}
	}
}

func TestValidateErrorCarriesSection(t *testing.T) {
	schema := report.BuildSchema(excludeAllBut(t, "dial_color"))

	errs := schema.Validate(report.Values{})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0].Section != report.SectionDial {
		t.Fatalf("error section = %q, want %q", errs[0].Section, report.SectionDial)
	}
	if !strings.Contains(errs[0].Message, "dial_color") {
		t.Fatalf("error message should name the field: %q", errs[0].Message)
	}
}

func TestDimensionSubPath(t *testing.T) {
	schema := report.BuildSchema(excludeAllBut(t, "case_diameter"))

	errs := schema.Validate(report.Values{
		"case_diameter": map[string]any{"diameter": 40.5, "thickness": 12.0},
	})
	if len(errs) != 0 {
		t.Fatalf("complete dimension should pass, got %v", errs)
	}

	errs = schema.Validate(report.Values{
		"case_diameter": map[string]any{"thickness": 12.0},
	})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, "case_diameter.diameter") {
		t.Fatalf("error should name the missing sub-path: %q", errs[0].Message)
	}
}

func TestConditionalRuleFollowsSiblingValue(t *testing.T) {
	schema := report.BuildSchema(excludeAllBut(t, "case_replacement_date"))

	// parent answer absent or "no": the date is hidden, no rule applies
	if errs := schema.Validate(report.Values{}); len(errs) != 0 {
		t.Fatalf("hidden field should not be required, got %v", errs)
	}
	if errs := schema.Validate(report.Values{"case_replaced": report.ChoiceNo}); len(errs) != 0 {
		t.Fatalf("hidden field should not be required, got %v", errs)
	}

	// parent says replaced: the date becomes required
	errs := schema.Validate(report.Values{"case_replaced": report.ChoiceYes})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error for missing replacement date, got %v", errs)
	}

	errs = schema.Validate(report.Values{
		"case_replaced":         report.ChoiceYes,
		"case_replacement_date": "2019-05-01",
	})
	if len(errs) != 0 {
		t.Fatalf("filled replacement date should pass, got %v", errs)
	}
}

func TestImageListRule(t *testing.T) {
	schema := report.BuildSchema(excludeAllBut(t, "case_images"))

	if errs := schema.Validate(report.Values{"case_images": []string{}}); len(errs) != 1 {
		t.Fatalf("empty image list should fail, got %v", errs)
	}
	if errs := schema.Validate(report.Values{"case_images": []string{"a.jpg"}}); len(errs) != 0 {
		t.Fatalf("non-empty image list should pass, got %v", errs)
	}
	// JSON round trips lists as []any
	if errs := schema.Validate(report.Values{"case_images": []any{"a.jpg"}}); len(errs) != 0 {
		t.Fatalf("decoded image list should pass, got %v", errs)
	}
}
