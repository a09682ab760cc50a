package models

import "github.com/lib/pq"

// CertificateTypeModel is a product tier. ExcludedReportFormFields is the
// single configuration axis deciding which report fields a partner is asked
// to fill: entries are exact field names or section identifiers.
type CertificateTypeModel struct {
	ID                       int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name                     string         `json:"name" gorm:"type:varchar(100);not null;uniqueIndex"`
	Price                    float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	ExcludedReportFormFields pq.StringArray `json:"excluded_report_form_fields" gorm:"type:text[]"`
	Physical                 bool           `json:"physical" gorm:"type:boolean;default:false;not null"`
}
