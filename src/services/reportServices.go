package services

import (
	"errors"

	"github.com/ChronoCert/ChronoCert-Backend/src/dtos"
	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/report"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportService struct {
	db           *gorm.DB
	certificates *CertificateService // for cache invalidation after writes
}

// NewReportService creates a new instance of ReportService.
// certificates may be nil when cache invalidation is not needed.
func NewReportService(db *gorm.DB, certificates *CertificateService) *ReportService {
	return &ReportService{db: db, certificates: certificates}
}

// LoadReport opens a report-editing session: it fetches the certificate,
// resolves its type's exclusion list per section and distributes the
// persisted attributes as per-section default values.
func (s *ReportService) LoadReport(certificateID int) (*dtos.ReportSessionDTO, error) {
	certificate, err := s.loadCertificate(certificateID)
	if err != nil {
		return nil, err
	}

	persisted, err := s.loadAttributes(certificate.ObjectID)
	if err != nil {
		return nil, err
	}

	excluded := []string(certificate.CertificateType.ExcludedReportFormFields)

	session := &dtos.ReportSessionDTO{
		Certificate:       *certificate,
		ExcludedBySection: map[string][]string{},
		VisibleBySection:  map[string][]string{},
		Sections:          map[string]report.Values{},
	}

	identity := identityValues(&certificate.Object)
	// visibility conditions may reference sibling sections, so they are
	// evaluated against the full aggregate, not the per-section slice
	current := report.Aggregate(identity, persisted)

	for _, sec := range report.Sections {
		session.ExcludedBySection[sec.Name] = report.ExcludedForSection(excluded, sec.Name)

		visible := report.VisibleFields(sec.Name, excluded, current)
		names := make([]string, 0, len(visible))
		for _, f := range visible {
			names = append(names, f.Name)
		}
		session.VisibleBySection[sec.Name] = names

		defaults := report.Values{}
		for _, f := range sec.Fields {
			if v, ok := identity[f.Name]; ok {
				defaults[f.Name] = v
				continue
			}
			if v, ok := persisted[f.Name]; ok {
				defaults[f.Name] = v
			}
		}
		session.Sections[sec.Name] = defaults
	}

	return session, nil
}

// SaveReport aggregates every section's values and persists them without
// validation: incomplete reports are tolerated. Writes run sequentially
// inside one transaction, object identity first, attributes blob second.
func (s *ReportService) SaveReport(certificateID int, payload *dtos.SaveReportDTO) error {
	certificate, err := s.loadCertificate(certificateID)
	if err != nil {
		return err
	}
	if certificate.ObjectID == 0 {
		return errors.New("certificate has no object to save a report for")
	}

	identity, attributes := splitPayload(payload)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.updateIdentity(tx, certificate.ObjectID, identity); err != nil {
			return err
		}
		return s.upsertAttributes(tx, certificate.ObjectID, attributes)
	})
	if err != nil {
		return err
	}

	if s.certificates != nil {
		s.certificates.invalidateCertificateCaches(certificateID)
	}

	log.Info().Int("certificateId", certificateID).Int("objectId", certificate.ObjectID).Msg("report saved")

	return nil
}

// FinishReport validates the full aggregate against the certificate type's
// exclusion-aware schema, then persists and moves the certificate from
// PendingCertification to Completed. Validation failure leaves no persisted
// side effects and blocks only this transition; a plain save stays open.
func (s *ReportService) FinishReport(certificateID int, payload *dtos.SaveReportDTO) (*dtos.FinishReportResultDTO, error) {
	certificate, err := s.loadCertificate(certificateID)
	if err != nil {
		return nil, err
	}
	if certificate.ObjectID == 0 {
		return nil, errors.New("certificate has no object to finish a report for")
	}

	flat := aggregatePayload(payload)
	excluded := []string(certificate.CertificateType.ExcludedReportFormFields)

	result, err := finishDecision(flat, excluded, certificate.Status)
	if err != nil {
		return nil, err
	}
	if !result.Completed {
		return result, nil
	}

	identity, attributes := report.SplitIdentity(flat)
	attributes = report.CleanAttributes(attributes)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.updateIdentity(tx, certificate.ObjectID, identity); err != nil {
			return err
		}
		if err := s.upsertAttributes(tx, certificate.ObjectID, attributes); err != nil {
			return err
		}
		return tx.Model(&models.CertificateModel{}).
			Where("id = ?", certificateID).
			Update("status", models.StatusCompleted).Error
	})
	if err != nil {
		return nil, err
	}

	if s.certificates != nil {
		s.certificates.invalidateCertificateCaches(certificateID)
	}

	log.Info().Int("certificateId", certificateID).Msg("report finished, certificate completed")

	return &dtos.FinishReportResultDTO{Completed: true}, nil
}

// ReopenReport moves a completed certificate back to PendingCertification
// so its report can be corrected.
func (s *ReportService) ReopenReport(certificateID int) error {
	certificate, err := s.loadCertificate(certificateID)
	if err != nil {
		return err
	}
	if !models.CanTransition(certificate.Status, models.StatusPendingCertification) {
		return models.ErrInvalidTransition{From: certificate.Status, To: models.StatusPendingCertification}
	}

	if err := s.db.Model(&models.CertificateModel{}).
		Where("id = ?", certificateID).
		Update("status", models.StatusPendingCertification).Error; err != nil {
		return err
	}

	if s.certificates != nil {
		s.certificates.invalidateCertificateCaches(certificateID)
	}

	return nil
}

// finishDecision is the completion gate, storage aside: the status must be
// able to reach Completed and the aggregate must pass the certificate type's
// exclusion-aware schema. A plain save never consults it.
func finishDecision(flat report.Values, excludedFields []string, status models.CertificateStatus) (*dtos.FinishReportResultDTO, error) {
	if !models.CanTransition(status, models.StatusCompleted) {
		return nil, models.ErrInvalidTransition{From: status, To: models.StatusCompleted}
	}
	if errs := report.BuildSchema(excludedFields).Validate(flat); len(errs) > 0 {
		return &dtos.FinishReportResultDTO{Completed: false, Errors: errs}, nil
	}
	return &dtos.FinishReportResultDTO{Completed: true}, nil
}

func (s *ReportService) loadCertificate(certificateID int) (*models.CertificateModel, error) {
	if certificateID == 0 {
		return nil, errors.New("no certificate selected")
	}
	var certificate models.CertificateModel
	err := s.db.Preload("CertificateType").Preload("Object").First(&certificate, certificateID).Error
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (s *ReportService) loadAttributes(objectID int) (report.Values, error) {
	var row models.ObjectAttributesModel
	err := s.db.Where("object_id = ?", objectID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// first session for this object, nothing persisted yet
		return report.Values{}, nil
	}
	if err != nil {
		return nil, err
	}
	return report.Values(row.Attributes), nil
}

// upsertAttributes creates the blob on first save and replaces it afterwards
func (s *ReportService) upsertAttributes(tx *gorm.DB, objectID int, attributes report.Values) error {
	var existing models.ObjectAttributesModel
	err := tx.Where("object_id = ?", objectID).First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row := models.ObjectAttributesModel{
			ObjectID:   objectID,
			Attributes: datatypes.JSONMap(attributes),
		}
		return tx.Create(&row).Error
	case err != nil:
		return err
	default:
		return tx.Model(&existing).Update("attributes", datatypes.JSONMap(attributes)).Error
	}
}

func (s *ReportService) updateIdentity(tx *gorm.DB, objectID int, identity report.Values) error {
	if len(identity) == 0 {
		return nil
	}

	updates := map[string]interface{}{}
	columns := map[string]string{
		"general_object_brand":            "brand",
		"general_object_model":            "model",
		"general_object_reference":        "reference",
		"general_object_serial_number":    "serial_number",
		"general_object_year_manufacture": "year_manufacture",
		"general_object_surname":          "surname",
		"general_object_type":             "type",
		"general_object_status":           "status",
	}
	for key, column := range columns {
		if v, ok := identity[key]; ok {
			updates[column] = v
		}
	}
	if len(updates) == 0 {
		return nil
	}

	return tx.Model(&models.ObjectModel{}).Where("id = ?", objectID).Updates(updates).Error
}

func aggregatePayload(payload *dtos.SaveReportDTO) report.Values {
	sections := make([]report.Values, 0, len(payload.Sections))
	for _, sec := range report.Sections {
		if values, ok := payload.Sections[sec.Name]; ok {
			sections = append(sections, values)
		}
	}
	return report.Aggregate(sections...)
}

func splitPayload(payload *dtos.SaveReportDTO) (identity report.Values, attributes report.Values) {
	identity, attributes = report.SplitIdentity(aggregatePayload(payload))
	return identity, report.CleanAttributes(attributes)
}

func identityValues(object *models.ObjectModel) report.Values {
	values := report.Values{
		"general_object_brand": object.Brand,
		"general_object_model": object.Model,
	}
	optional := map[string]*string{
		"general_object_reference":        object.Reference,
		"general_object_serial_number":    object.SerialNumber,
		"general_object_year_manufacture": object.YearManufacture,
		"general_object_surname":          object.Surname,
		"general_object_type":             object.Type,
		"general_object_status":           object.Status,
	}
	for key, v := range optional {
		if v != nil {
			values[key] = *v
		}
	}
	return values
}
