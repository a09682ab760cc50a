package dtos

import "github.com/ChronoCert/ChronoCert-Backend/src/models"

// CreateCertificateDTO opens a new certification job: the product tier plus
// the identity of the watch being certified.
type CreateCertificateDTO struct {
	CertificateTypeID int                `json:"certificateTypeId" binding:"required"`
	CustomerID        *int               `json:"customerId"`
	Object            models.ObjectModel `json:"object"`
}

// ChangeStatusDTO requests a certificate status transition.
type ChangeStatusDTO struct {
	Status models.CertificateStatus `json:"status" binding:"required"`
}

// CertificateSummaryDTO is the lightweight listing row for dashboards.
type CertificateSummaryDTO struct {
	ID                  int     `json:"id"`
	PublicID            string  `json:"publicId"`
	Status              string  `json:"status"`
	CertificateTypeName string  `json:"certificateTypeName"`
	Brand               string  `json:"brand"`
	Model               string  `json:"model"`
	Reference           *string `json:"reference,omitempty"`
	SerialNumber        *string `json:"serialNumber,omitempty"`
}

// DriveImportDTO imports an object photo shared through a Google Drive link
// into an image field of the report.
type DriveImportDTO struct {
	URL      string `json:"url" binding:"required"`
	FieldKey string `json:"fieldKey" binding:"required"`
}
