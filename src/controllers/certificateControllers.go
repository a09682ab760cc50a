package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ChronoCert/ChronoCert-Backend/src/dtos"
	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	service *services.CertificateService
}

func NewCertificateController(service *services.CertificateService) *CertificateController {
	return &CertificateController{service: service}
}

func (cc *CertificateController) GetAllCertificates(c *gin.Context) {
	var customerID *int
	if customerStr := c.Query("customerId"); customerStr != "" {
		parsed, err := strconv.Atoi(customerStr)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid customerId parameter"})
			return
		}
		customerID = &parsed
	}

	var status *models.CertificateStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.CertificateStatus(statusStr)
		if !models.ValidStatus(s) {
			c.JSON(400, gin.H{"error": "Invalid status parameter"})
			return
		}
		status = &s
	}

	certificates, err := cc.service.GetAllCertificates(customerID, status)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, certificates)
}

func (cc *CertificateController) GetCertificateSummaries(c *gin.Context) {
	var customerID *int
	if customerStr := c.Query("customerId"); customerStr != "" {
		parsed, err := strconv.Atoi(customerStr)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid customerId parameter"})
			return
		}
		customerID = &parsed
	}

	summaries, err := cc.service.GetCertificateSummaries(customerID)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, summaries)
}

func (cc *CertificateController) GetCertificateByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	certificate, err := cc.service.GetCertificateByID(id)
	if err != nil {
		c.JSON(404, gin.H{"error": "Certificate not found"})
		return
	}
	c.JSON(200, certificate)
}

func (cc *CertificateController) CreateCertificate(c *gin.Context) {
	var dto dtos.CreateCertificateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(dto.Object.Brand) == "" {
		c.JSON(400, gin.H{"error": "Object brand is required"})
		return
	}

	var createdBy *int
	if userId, ok := c.Get("userId"); ok {
		if idFloat, ok := userId.(float64); ok {
			id := int(idFloat)
			createdBy = &id
		}
	}

	certificate, err := cc.service.CreateCertificate(&dto, createdBy)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, certificate)
}

func (cc *CertificateController) ChangeStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var dto dtos.ChangeStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	certificate, err := cc.service.ChangeStatus(id, dto.Status)
	if err != nil {
		var invalid models.ErrInvalidTransition
		if errors.As(err, &invalid) {
			c.JSON(409, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, certificate)
}

func (cc *CertificateController) DeleteCertificate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := cc.service.DeleteCertificate(id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Certificate deleted successfully"})
}
