package dtos

import (
	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/report"
)

// ReportSessionDTO is everything a report-editing session needs at open:
// the certificate, its type's exclusion list resolved per section, the
// persisted values distributed as per-section defaults, and the field names
// each section should render given those values.
type ReportSessionDTO struct {
	Certificate       models.CertificateModel  `json:"certificate"`
	ExcludedBySection map[string][]string      `json:"excludedBySection"`
	VisibleBySection  map[string][]string      `json:"visibleBySection"`
	Sections          map[string]report.Values `json:"sections"`
}

// SaveReportDTO carries every section's live values on save. The service
// aggregates them into one flat map before persisting.
type SaveReportDTO struct {
	Sections map[string]report.Values `json:"sections"`
}

// FinishReportResultDTO reports the outcome of save-and-finish. Errors is
// empty when validation passed and the certificate moved to Completed.
type FinishReportResultDTO struct {
	Completed bool                `json:"completed"`
	Errors    []report.FieldError `json:"errors,omitempty"`
}
