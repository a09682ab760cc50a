package services

import (
	"errors"
	"fmt"

	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/report"
	"gorm.io/gorm"
)

type CertificateTypeService struct {
	db *gorm.DB
}

// NewCertificateTypeService creates a new instance of CertificateTypeService
func NewCertificateTypeService(db *gorm.DB) *CertificateTypeService {
	return &CertificateTypeService{db: db}
}

// GetAllCertificateTypes retrieves all certificate type records
func (s *CertificateTypeService) GetAllCertificateTypes() ([]models.CertificateTypeModel, error) {
	var types []models.CertificateTypeModel
	result := s.db.Order("price ASC").Find(&types)
	if result.Error != nil {
		return nil, result.Error
	}
	return types, nil
}

// GetCertificateTypeByID retrieves a certificate type by its ID
func (s *CertificateTypeService) GetCertificateTypeByID(id int) (*models.CertificateTypeModel, error) {
	var certificateType models.CertificateTypeModel
	result := s.db.First(&certificateType, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &certificateType, nil
}

// CreateCertificateType creates a new certificate type. Exclusion entries
// must name a known report field or section; a typo here would silently
// show or hide the wrong fields for every certificate of this type.
func (s *CertificateTypeService) CreateCertificateType(certificateType *models.CertificateTypeModel) error {
	if err := validateExclusions(certificateType.ExcludedReportFormFields); err != nil {
		return err
	}
	return s.db.Create(certificateType).Error
}

// UpdateCertificateType updates an existing certificate type
func (s *CertificateTypeService) UpdateCertificateType(id int, certificateType *models.CertificateTypeModel) error {
	if err := validateExclusions(certificateType.ExcludedReportFormFields); err != nil {
		return err
	}
	return s.db.Where("id = ?", id).Updates(certificateType).Error
}

// DeleteCertificateType deletes a certificate type unless certificates
// still reference it.
func (s *CertificateTypeService) DeleteCertificateType(id int) error {
	var count int64
	if err := s.db.Model(&models.CertificateModel{}).
		Where("certificate_type_id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("certificate type is in use and cannot be deleted")
	}
	return s.db.Delete(&models.CertificateTypeModel{}, id).Error
}

func validateExclusions(excluded []string) error {
	for _, e := range excluded {
		if _, ok := report.Lookup(e); ok {
			continue
		}
		if len(report.SectionFields(e)) > 0 {
			continue
		}
		return fmt.Errorf("unknown report field or section in exclusion list: %q", e)
	}
	return nil
}
