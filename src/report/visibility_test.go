package report_test

import (
	"testing"

	"github.com/ChronoCert/ChronoCert-Backend/src/report"
)

func visibleNames(section string, excluded []string, values report.Values) []string {
	var names []string
	for _, f := range report.VisibleFields(section, excluded, values) {
		names = append(names, f.Name)
	}
	return names
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

func TestVisibleFieldsHidesConditionalSiblings(t *testing.T) {
	names := visibleNames(report.SectionCase, nil, report.Values{})
	if contains(names, "case_replacement_date") {
		t.Fatal("replacement date shown before the part is marked replaced")
	}

	names = visibleNames(report.SectionCase, nil, report.Values{
		"case_replaced": report.ChoiceYes,
	})
	if !contains(names, "case_replacement_date") {
		t.Fatal("replacement date hidden after the part is marked replaced")
	}
}

func TestVisibleFieldsRespectsExclusions(t *testing.T) {
	names := visibleNames(report.SectionCase, []string{"case_material"}, report.Values{})
	if contains(names, "case_material") {
		t.Fatal("an excluded field must not be rendered")
	}
	if !contains(names, "case_finish") {
		t.Fatal("a non-excluded field disappeared")
	}

	if got := visibleNames(report.SectionCase, []string{report.SectionCase}, report.Values{}); got != nil {
		t.Fatalf("excluding the whole section should render nothing, got %v", got)
	}
}
