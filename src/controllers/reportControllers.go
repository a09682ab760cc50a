package controllers

import (
	"errors"
	"strconv"

	"github.com/ChronoCert/ChronoCert-Backend/src/dtos"
	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// LoadReport opens a report-editing session for a certificate
func (rc *ReportController) LoadReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	session, err := rc.service.LoadReport(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Certificate not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, session)
}

// SaveReport persists whatever is present, tolerating incomplete reports
func (rc *ReportController) SaveReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var payload dtos.SaveReportDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := rc.service.SaveReport(id, &payload); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Certificate not found"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Report saved successfully"})
}

// FinishReport validates the full report and, if it passes, completes the
// certificate. Validation failures come back as 422 with the error list.
func (rc *ReportController) FinishReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var payload dtos.SaveReportDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	result, err := rc.service.FinishReport(id, &payload)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(404, gin.H{"error": "Certificate not found"})
			return
		}
		var invalid models.ErrInvalidTransition
		if errors.As(err, &invalid) {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	if !result.Completed {
		c.JSON(422, result)
		return
	}
	c.JSON(200, result)
}

// ReopenReport moves a completed certificate back to PendingCertification
func (rc *ReportController) ReopenReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := rc.service.ReopenReport(id); err != nil {
		var invalid models.ErrInvalidTransition
		if errors.As(err, &invalid) {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Report reopened"})
}
