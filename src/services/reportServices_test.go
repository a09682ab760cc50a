package services

import (
	"errors"
	"testing"

	"github.com/ChronoCert/ChronoCert-Backend/src/dtos"
	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/report"
)

// allExcludedBut shrinks the schema to the named fields so the scenarios
// stay readable.
func allExcludedBut(t *testing.T, keep ...string) []string {
	t.Helper()
	kept := map[string]bool{}
	for _, name := range keep {
		kept[name] = true
	}
	var excluded []string
	for _, name := range report.AllFieldNames() {
		if !kept[name] {
			excluded = append(excluded, name)
		}
	}
	return excluded
}

func TestSaveToleratesWhatFinishRejects(t *testing.T) {
	excluded := allExcludedBut(t, "case_material", "case_finish")

	// case_material is required but missing
	payload := &dtos.SaveReportDTO{Sections: map[string]report.Values{
		"case": {"case_finish": "Poli"},
	}}

	// the save path never consults the schema: the partial data comes
	// through the split untouched and ready to persist
	_, attributes := splitPayload(payload)
	if attributes["case_finish"] != "Poli" {
		t.Fatalf("partial save lost data: %v", attributes)
	}

	result, err := finishDecision(aggregatePayload(payload), excluded, models.StatusPendingCertification)
	if err != nil {
		t.Fatalf("finishDecision: %v", err)
	}
	if result.Completed {
		t.Fatal("finish must fail validation on the same incomplete payload")
	}
	if len(result.Errors) == 0 {
		t.Fatal("a rejected finish must name its errors")
	}
	for _, fe := range result.Errors {
		if fe.Section != "case" {
			t.Fatalf("unexpected error section %q", fe.Section)
		}
	}
}

func TestFinishDecisionCompletesWhenSchemaPasses(t *testing.T) {
	excluded := allExcludedBut(t, "case_material", "case_finish")

	payload := &dtos.SaveReportDTO{Sections: map[string]report.Values{
		"case": {"case_material": "Acier", "case_finish": "Poli"},
	}}

	result, err := finishDecision(aggregatePayload(payload), excluded, models.StatusPendingCertification)
	if err != nil {
		t.Fatalf("finishDecision: %v", err)
	}
	if !result.Completed {
		t.Fatalf("complete payload rejected: %v", result.Errors)
	}
}

func TestFinishDecisionGuardsTheTransition(t *testing.T) {
	excluded := allExcludedBut(t, "case_material")

	payload := &dtos.SaveReportDTO{Sections: map[string]report.Values{
		"case": {"case_material": "Acier"},
	}}

	_, err := finishDecision(aggregatePayload(payload), excluded, models.StatusPendingPayment)
	var invalid models.ErrInvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("expected a transition error, got %v", err)
	}
}
