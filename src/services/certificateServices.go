package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ChronoCert/ChronoCert-Backend/src/dtos"
	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Cache entry
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

type CertificateService struct {
	db    *gorm.DB
	cache map[string]*CacheEntry
	mutex sync.RWMutex
}

func NewCertificateService(db *gorm.DB) *CertificateService {
	service := &CertificateService{
		db:    db,
		cache: make(map[string]*CacheEntry),
	}

	// Clean up cache every 30 minutes
	go service.cleanupCache()

	return service
}

func (s *CertificateService) cleanupCache() {
	ticker := time.NewTicker(30 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mutex.Lock()
		now := time.Now()
		for key, entry := range s.cache {
			if now.After(entry.ExpiresAt) {
				delete(s.cache, key)
			}
		}
		s.mutex.Unlock()
	}
}

func (s *CertificateService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(duration),
	}
}

func (s *CertificateService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || time.Now().After(entry.ExpiresAt) {
		return nil, false
	}

	return entry.Data, true
}

func (s *CertificateService) invalidateCache(pattern string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.cache {
		if strings.HasPrefix(key, pattern) {
			delete(s.cache, key)
		}
	}
}

// invalidateCertificateCaches drops every cached view a certificate mutation
// can leave stale: the record itself, the listings and the dashboard summaries.
func (s *CertificateService) invalidateCertificateCaches(id int) {
	s.invalidateCache(fmt.Sprintf("certificate_%d", id))
	s.invalidateCache("certificates")
	s.invalidateCache("certificate_summaries")
}

func (s *CertificateService) GetAllCertificates(customerID *int, status *models.CertificateStatus) ([]models.CertificateModel, error) {
	var cacheKey string
	switch {
	case customerID != nil:
		cacheKey = fmt.Sprintf("certificates_customer_%d", *customerID)
	case status != nil:
		cacheKey = fmt.Sprintf("certificates_status_%s", *status)
	default:
		cacheKey = "certificates_all"
	}

	if cached, found := s.getCache(cacheKey); found {
		return cached.([]models.CertificateModel), nil
	}

	var certificates []models.CertificateModel
	query := s.db.Preload("CertificateType").Preload("Object")
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	err := query.Order("created_at DESC").Find(&certificates).Error
	if err == nil {
		s.setCache(cacheKey, certificates, 5*time.Minute)
	}

	return certificates, err
}

func (s *CertificateService) GetCertificateByID(id int) (*models.CertificateModel, error) {
	cacheKey := fmt.Sprintf("certificate_%d", id)

	if cached, found := s.getCache(cacheKey); found {
		certificate := cached.(models.CertificateModel)
		return &certificate, nil
	}

	var certificate models.CertificateModel
	err := s.db.Preload("CertificateType").
		Preload("Object").
		First(&certificate, id).Error
	if err != nil {
		return nil, err
	}

	s.setCache(cacheKey, certificate, 10*time.Minute)

	return &certificate, nil
}

// CreateCertificate opens a new certification job: the watch identity is
// created first, then the certificate pointing at it, in one transaction.
func (s *CertificateService) CreateCertificate(dto *dtos.CreateCertificateDTO, createdBy *int) (*models.CertificateModel, error) {
	var certificateType models.CertificateTypeModel
	if err := s.db.First(&certificateType, dto.CertificateTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("certificate type does not exist")
		}
		return nil, err
	}

	certificate := models.CertificateModel{
		PublicID:          uuid.New().String(),
		Status:            models.StatusPendingPayment,
		CertificateTypeID: dto.CertificateTypeID,
		CustomerID:        dto.CustomerID,
		CreatedBy:         createdBy,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		object := dto.Object
		if err := tx.Create(&object).Error; err != nil {
			return err
		}
		certificate.ObjectID = object.ID
		return tx.Create(&certificate).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCertificateCaches(certificate.ID)

	log.Info().
		Str("publicId", certificate.PublicID).
		Int("certificateTypeId", certificate.CertificateTypeID).
		Msg("certificate created")

	return &certificate, nil
}

// ChangeStatus moves a certificate through its lifecycle, rejecting moves
// the transition table does not allow.
func (s *CertificateService) ChangeStatus(id int, to models.CertificateStatus) (*models.CertificateModel, error) {
	if !models.ValidStatus(to) {
		return nil, fmt.Errorf("unknown certificate status %q", to)
	}

	var certificate models.CertificateModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&certificate, id).Error; err != nil {
			return err
		}
		if !models.CanTransition(certificate.Status, to) {
			return models.ErrInvalidTransition{From: certificate.Status, To: to}
		}
		certificate.Status = to
		return tx.Model(&certificate).Update("status", to).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCertificateCaches(id)

	log.Info().Int("id", id).Str("status", string(to)).Msg("certificate status changed")

	return &certificate, nil
}

func (s *CertificateService) DeleteCertificate(id int) error {
	if err := s.db.Delete(&models.CertificateModel{}, id).Error; err != nil {
		return err
	}

	s.invalidateCertificateCaches(id)

	return nil
}

// GetCertificateSummaries returns the lightweight listing rows used by the
// partner and admin dashboards.
func (s *CertificateService) GetCertificateSummaries(customerID *int) ([]dtos.CertificateSummaryDTO, error) {
	cacheKey := "certificate_summaries"
	if customerID != nil {
		cacheKey = fmt.Sprintf("certificate_summaries_customer_%d", *customerID)
	}

	if cached, found := s.getCache(cacheKey); found {
		return cached.([]dtos.CertificateSummaryDTO), nil
	}

	type summaryRow struct {
		ID                  int
		PublicID            string `gorm:"column:public_id"`
		Status              string
		CertificateTypeName string  `gorm:"column:certificate_type_name"`
		Brand               string  `gorm:"column:brand"`
		Model               string  `gorm:"column:model"`
		Reference           *string `gorm:"column:reference"`
		SerialNumber        *string `gorm:"column:serial_number"`
	}

	var rows []summaryRow

	query := s.db.Table("certificate_models AS c").
		Select(`c.id,
			c.public_id,
			c.status,
			t.name AS certificate_type_name,
			o.brand,
			o.model,
			o.reference,
			o.serial_number`).
		Joins("LEFT JOIN certificate_type_models t ON t.id = c.certificate_type_id").
		Joins("LEFT JOIN object_models o ON o.id = c.object_id")

	if customerID != nil {
		query = query.Where("c.customer_id = ?", *customerID)
	}

	if err := query.Order("c.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]dtos.CertificateSummaryDTO, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, dtos.CertificateSummaryDTO{
			ID:                  row.ID,
			PublicID:            row.PublicID,
			Status:              row.Status,
			CertificateTypeName: row.CertificateTypeName,
			Brand:               row.Brand,
			Model:               row.Model,
			Reference:           row.Reference,
			SerialNumber:        row.SerialNumber,
		})
	}

	s.setCache(cacheKey, summaries, 5*time.Minute)

	return summaries, nil
}
