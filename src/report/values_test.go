package report_test

import (
	"reflect"
	"testing"

	"github.com/ChronoCert/ChronoCert-Backend/src/report"
)

func TestCleanAttributesDropsEmptyValues(t *testing.T) {
	in := report.Values{
		"case_material":     "Acier",
		"case_engravings":   "",
		"case_score":        0,
		"case_images":       []string{},
		"dial_images":       []any{},
		"dial_color":        nil,
		"case_diameter":     map[string]any{"diameter": nil, "thickness": ""},
		"bracelet_dimensions": map[string]any{"length": 180.0, "width": ""},
	}

	got := report.CleanAttributes(in)

	want := report.Values{
		"case_material":       "Acier",
		"case_score":          0,
		"bracelet_dimensions": map[string]any{"length": 180.0, "width": ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CleanAttributes = %#v, want %#v", got, want)
	}
}

func TestCleanAttributesIdempotent(t *testing.T) {
	in := report.Values{
		"case_material": "Acier",
		"case_score":    7,
		"dial_images":   []string{"a.jpg"},
		"case_shape":    "",
		"hands_type":    nil,
	}

	once := report.CleanAttributes(in)
	twice := report.CleanAttributes(once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("CleanAttributes is not idempotent: %#v vs %#v", once, twice)
	}
}

func TestAggregateMergesSections(t *testing.T) {
	caseValues := report.Values{"case_material": "Acier", "case_score": 7}
	dialValues := report.Values{"dial_color": "Noir"}

	flat := report.Aggregate(caseValues, dialValues)

	if len(flat) != 3 {
		t.Fatalf("expected 3 keys, got %d", len(flat))
	}
	if flat["case_score"] != 7 || flat["dial_color"] != "Noir" {
		t.Fatalf("unexpected aggregate: %#v", flat)
	}
}

func TestSplitIdentity(t *testing.T) {
	flat := report.Values{
		"general_object_brand":         "Rolex",
		"general_object_serial_number": "R123456",
		"case_material":                "Acier",
		"case_score":                   7,
	}

	identity, attributes := report.SplitIdentity(flat)

	if len(identity) != 2 {
		t.Fatalf("expected 2 identity fields, got %#v", identity)
	}
	if identity["general_object_brand"] != "Rolex" {
		t.Fatalf("missing brand in identity: %#v", identity)
	}
	if len(attributes) != 2 {
		t.Fatalf("expected 2 attribute fields, got %#v", attributes)
	}
	if _, leaked := attributes["general_object_brand"]; leaked {
		t.Fatal("identity field leaked into attributes")
	}
}
