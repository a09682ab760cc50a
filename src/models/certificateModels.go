package models

import (
	"fmt"
	"time"
)

// CertificateStatus is the finite state of a certification job.
type CertificateStatus string

const (
	StatusPendingPayment       CertificateStatus = "PendingPayment"
	StatusPaymentConfirmed     CertificateStatus = "PaymentConfirmed"
	StatusInspectionCompleted  CertificateStatus = "InspectionCompleted"
	StatusPendingCertification CertificateStatus = "PendingCertification"
	StatusCompleted            CertificateStatus = "Completed"
	StatusCancelled            CertificateStatus = "Cancelled"
)

// statusTransitions lists the allowed moves. The report flow only uses
// PendingCertification ⇄ Completed; Cancelled is reachable from the early
// states, before an inspection is done.
var statusTransitions = map[CertificateStatus][]CertificateStatus{
	StatusPendingPayment:       {StatusPaymentConfirmed, StatusCancelled},
	StatusPaymentConfirmed:     {StatusInspectionCompleted, StatusCancelled},
	StatusInspectionCompleted:  {StatusPendingCertification, StatusCancelled},
	StatusPendingCertification: {StatusCompleted},
	StatusCompleted:            {StatusPendingCertification},
	StatusCancelled:            {},
}

// CanTransition reports whether moving from one status to another is allowed.
func CanTransition(from, to CertificateStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is a known certificate status.
func ValidStatus(s CertificateStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// ErrInvalidTransition is returned when a status change is not allowed.
type ErrInvalidTransition struct {
	From, To CertificateStatus
}

func (e ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

type CertificateModel struct {
	ID                int                  `json:"id" gorm:"primaryKey;autoIncrement"`
	PublicID          string               `json:"publicId" gorm:"type:uuid;uniqueIndex;not null"`
	Status            CertificateStatus    `json:"status" gorm:"type:varchar(30);not null;default:'PendingPayment'"`
	CertificateTypeID int                  `json:"certificateTypeId" gorm:"column:certificate_type_id;not null"`
	CertificateType   CertificateTypeModel `json:"certificateType" gorm:"foreignKey:CertificateTypeID;references:ID"`
	ObjectID          int                  `json:"objectId" gorm:"column:object_id;not null"`
	Object            ObjectModel          `json:"object" gorm:"foreignKey:ObjectID;references:ID"`
	CustomerID        *int                 `json:"customerId" gorm:"column:customer_id"`
	CreatedBy         *int                 `json:"createdBy" gorm:"column:created_by"`
	CreatedAt         time.Time            `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt         time.Time            `json:"updatedAt" gorm:"autoUpdateTime"`
}
