package services

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/rs/zerolog/log"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ImportResult struct {
	Imported int
	Errors   []string
}

type ObjectService struct {
	db *gorm.DB
}

// NewObjectService creates a new instance of ObjectService
func NewObjectService(db *gorm.DB) *ObjectService {
	return &ObjectService{db: db}
}

// GetObjectByID retrieves an object record by its ID
func (s *ObjectService) GetObjectByID(id int) (*models.ObjectModel, error) {
	var object models.ObjectModel
	result := s.db.First(&object, id)
	if result.Error != nil {
		return nil, result.Error
	}
	return &object, nil
}

// UpdateObject updates the identity fields of an object record
func (s *ObjectService) UpdateObject(id int, object *models.ObjectModel) error {
	return s.db.Where("id = ?", id).Updates(object).Error
}

// ImportObjectsFromExcel bulk-creates watch objects from a partner
// spreadsheet. Expected columns: brand, model, reference, serial number,
// year, surname. Rows without a brand are skipped; per-row failures are
// collected instead of aborting the whole import.
func (s *ObjectService) ImportObjectsFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		// header row or empty row
		if i == 0 || len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		cell := func(idx int) *string {
			if len(row) > idx {
				v := strings.TrimSpace(row[idx])
				if v != "" {
					return &v
				}
			}
			return nil
		}

		object := models.ObjectModel{
			Brand: strings.TrimSpace(row[0]),
		}
		if m := cell(1); m != nil {
			object.Model = *m
		}
		object.Reference = cell(2)
		object.SerialNumber = cell(3)
		object.YearManufacture = cell(4)
		object.Surname = cell(5)

		if err := s.db.Create(&object).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		result.Imported++
	}

	log.Info().Int("imported", result.Imported).Int("errors", len(result.Errors)).Msg("excel import finished")

	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, fmt.Errorf("no object could be imported")
	}

	return result, nil
}
