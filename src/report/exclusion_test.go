package report_test

import (
	"strings"
	"testing"

	"github.com/ChronoCert/ChronoCert-Backend/src/report"
)

func TestFilterExcludedCompleteness(t *testing.T) {
	excluded := []string{
		"case_back", "case_crown", "bracelet_material", "dial_score", "value",
	}

	got := report.FilterExcluded(excluded, "case")

	for _, f := range got {
		if !strings.HasPrefix(f, "case") {
			t.Fatalf("result %q does not start with prefix", f)
		}
	}
	for _, f := range excluded {
		if strings.HasPrefix(f, "case") {
			found := false
			for _, g := range got {
				if g == f {
					found = true
				}
			}
			if !found {
				t.Fatalf("entry %q starts with prefix but is missing from result", f)
			}
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}
}

func TestFilterExcludedEmptyInputs(t *testing.T) {
	if got := report.FilterExcluded(nil, "case"); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	// empty prefix matches everything
	if got := report.FilterExcluded([]string{"a", "b"}, ""); len(got) != 2 {
		t.Fatalf("expected all entries, got %v", got)
	}
}

// The legacy prefix filter cannot tell "case" apart from "case_back": this
// is the collision the registry-based predicate exists to avoid.
func TestFilterExcludedPrefixCollision(t *testing.T) {
	got := report.FilterExcluded([]string{"case_back_type"}, "case")
	if len(got) != 1 {
		t.Fatalf("prefix filter should match case_back_type under prefix case, got %v", got)
	}
}

func TestExcludedExactAndSectionMatch(t *testing.T) {
	if !report.Excluded([]string{"case_material"}, "case_material") {
		t.Fatal("exact entry should exclude its field")
	}
	if !report.Excluded([]string{"case"}, "case_material") {
		t.Fatal("section entry should exclude fields the section owns")
	}
	// "case" does not own case_back_type, so it must stay visible
	if report.Excluded([]string{"case"}, "case_back_type") {
		t.Fatal("excluding section case must not suppress case_back fields")
	}
	if report.Excluded([]string{"case_material"}, "case_shape") {
		t.Fatal("exact entry must not spill over to sibling fields")
	}
}

func TestExcludedForSectionSubsections(t *testing.T) {
	excluded := []string{"case_back", "case_crown"}

	if got := report.ExcludedForSection(excluded, report.SectionCase); len(got) != 0 {
		t.Fatalf("case section should keep all fields, got %v", got)
	}

	got := report.ExcludedForSection(excluded, report.SectionCaseBack)
	if len(got) != len(report.SectionFields(report.SectionCaseBack)) {
		t.Fatalf("excluding case_back should cover every case_back field, got %v", got)
	}
	for _, f := range got {
		if !strings.HasPrefix(f, "case_back") {
			t.Fatalf("unexpected field %q", f)
		}
	}
}

func TestRegistryNamespace(t *testing.T) {
	for _, sec := range report.Sections {
		for _, f := range sec.Fields {
			if !strings.HasPrefix(f.Name, sec.Name+"_") {
				t.Fatalf("field %q does not carry its section prefix %q", f.Name, sec.Name)
			}
			if got := report.SectionOf(f.Name); got != sec.Name {
				t.Fatalf("SectionOf(%q) = %q, want %q", f.Name, got, sec.Name)
			}
		}
	}
}
