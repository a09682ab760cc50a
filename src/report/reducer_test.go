package report_test

import (
	"testing"

	"github.com/ChronoCert/ChronoCert-Backend/src/report"
)

func TestApplySetsValue(t *testing.T) {
	values := report.Values{"case_material": "Acier"}

	next := report.Apply(values, report.FieldChange{Field: "case_shape", Value: "Ronde"})

	if next["case_shape"] != "Ronde" {
		t.Fatalf("change not applied: %#v", next)
	}
	if values["case_shape"] != nil {
		t.Fatal("input map was mutated")
	}
}

func TestApplyBraceletSentinelResetsScoreAndDependents(t *testing.T) {
	values := report.Values{
		"bracelet_type":          "Oyster",
		"bracelet_material":      "Acier",
		"bracelet_signature":     "Rolex",
		"bracelet_set_with_gems": report.ChoiceNo,
		"bracelet_images":        []string{"a.jpg"},
		"bracelet_score":         8,
		"bracelet_clasp_type":    "Déployante",
	}

	next := report.Apply(values, report.FieldChange{Field: "bracelet_type", Value: report.SentinelNone})

	if next["bracelet_score"] != 0 {
		t.Fatalf("bracelet_score = %v, want 0", next["bracelet_score"])
	}
	if next["bracelet_clasp_score"] != 0 {
		t.Fatalf("bracelet_clasp_score = %v, want 0", next["bracelet_clasp_score"])
	}
	for _, gone := range []string{
		"bracelet_material", "bracelet_signature",
		"bracelet_set_with_gems", "bracelet_images", "bracelet_clasp_type",
	} {
		if _, present := next[gone]; present {
			t.Fatalf("dependent field %q should have been cleared", gone)
		}
	}
	if next["bracelet_type"] != report.SentinelNone {
		t.Fatalf("bracelet_type = %v", next["bracelet_type"])
	}
}

func TestApplyClearsTransitiveDependents(t *testing.T) {
	values := report.Values{
		"dial_set_with_gems":    report.ChoiceYes,
		"dial_gem_setting_type": "Serti griffes",
		"dial_gem_stones":       []string{"Diamant"},
	}

	next := report.Apply(values, report.FieldChange{Field: "dial_set_with_gems", Value: report.ChoiceNo})

	if _, present := next["dial_gem_setting_type"]; present {
		t.Fatal("gem setting type should hide when gems are answered no")
	}
	if _, present := next["dial_gem_stones"]; present {
		t.Fatal("gem stones should hide when gems are answered no")
	}
}

func TestApplyKeepsUnrelatedSections(t *testing.T) {
	values := report.Values{
		"bracelet_type": "Oyster",
		"case_material": "Acier",
		"dial_color":    "Noir",
	}

	next := report.Apply(values, report.FieldChange{Field: "bracelet_type", Value: report.SentinelNone})

	if next["case_material"] != "Acier" || next["dial_color"] != "Noir" {
		t.Fatalf("unrelated sections changed: %#v", next)
	}
}
