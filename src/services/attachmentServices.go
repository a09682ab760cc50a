package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/report"
	"gorm.io/gorm"
)

type AttachmentService struct {
	db *gorm.DB
}

// NewAttachmentService creates a new instance of AttachmentService
func NewAttachmentService(db *gorm.DB) *AttachmentService {
	return &AttachmentService{db: db}
}

// IsAllowedImage reports whether a filename is acceptable for an image
// field. Image fields only take .jpg/.png system-wide.
func IsAllowedImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".png":
		return true
	}
	return false
}

// ValidFieldKey reports whether a field key may carry attachments: it must
// be a registered image or document field.
func ValidFieldKey(fieldKey string) bool {
	f, ok := report.Lookup(fieldKey)
	if !ok {
		return false
	}
	return f.Kind == report.KindImages || f.Kind == report.KindDocuments
}

// SaveAttachment stores a file row. Re-uploading the same original file for
// the same object and field replaces the previous row and removes the old
// file from disk, so retried uploads do not duplicate stored paths.
func (s *AttachmentService) SaveAttachment(attachment *models.AttachmentModel) error {
	var existing models.AttachmentModel
	err := s.db.Where("object_id = ? AND field_key = ? AND original_name = ?",
		attachment.ObjectID, attachment.FieldKey, attachment.OriginalName).
		First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.db.Create(attachment).Error
	case err != nil:
		return err
	default:
		if existing.Path != "" && existing.Path != attachment.Path {
			_ = os.Remove(existing.Path)
		}
		attachment.ID = existing.ID
		return s.db.Model(&existing).Updates(map[string]interface{}{
			"filename":     attachment.Filename,
			"path":         attachment.Path,
			"content_type": attachment.ContentType,
			"size":         attachment.Size,
			"updated_at":   time.Now(),
		}).Error
	}
}

// GetAttachmentsByField lists the stored files of one report field
func (s *AttachmentService) GetAttachmentsByField(objectID int, fieldKey string) ([]models.AttachmentModel, error) {
	var attachments []models.AttachmentModel
	err := s.db.Where("object_id = ? AND field_key = ?", objectID, fieldKey).
		Order("created_at ASC").
		Find(&attachments).Error
	return attachments, err
}

// GetAttachmentByPath resolves a stored path back to its row
func (s *AttachmentService) GetAttachmentByPath(objectID int, path string) (*models.AttachmentModel, error) {
	var attachment models.AttachmentModel
	err := s.db.Where("object_id = ? AND path = ?", objectID, path).First(&attachment).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// DeleteAttachments removes the rows for the given stored paths and their
// files on disk.
func (s *AttachmentService) DeleteAttachments(objectID int, paths []string) error {
	for _, path := range paths {
		var attachment models.AttachmentModel
		err := s.db.Where("object_id = ? AND path = ?", objectID, path).First(&attachment).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := s.db.Delete(&attachment).Error; err != nil {
			return err
		}
		_ = os.Remove(attachment.Path)
	}
	return nil
}
