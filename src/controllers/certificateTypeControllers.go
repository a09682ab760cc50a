package controllers

import (
	"strconv"
	"strings"

	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type CertificateTypeController struct {
	service *services.CertificateTypeService
}

func NewCertificateTypeController(service *services.CertificateTypeService) *CertificateTypeController {
	return &CertificateTypeController{service: service}
}

func (cc *CertificateTypeController) GetAllCertificateTypes(c *gin.Context) {
	types, err := cc.service.GetAllCertificateTypes()
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, types)
}

func (cc *CertificateTypeController) GetCertificateTypeByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	certificateType, err := cc.service.GetCertificateTypeByID(id)
	if err != nil {
		c.JSON(404, gin.H{"error": "Certificate type not found"})
		return
	}
	c.JSON(200, certificateType)
}

func (cc *CertificateTypeController) CreateCertificateType(c *gin.Context) {
	var certificateType models.CertificateTypeModel
	if err := c.ShouldBindJSON(&certificateType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(certificateType.Name) == "" {
		c.JSON(400, gin.H{"error": "Name is required"})
		return
	}

	if err := cc.service.CreateCertificateType(&certificateType); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, certificateType)
}

func (cc *CertificateTypeController) UpdateCertificateType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var certificateType models.CertificateTypeModel
	if err := c.ShouldBindJSON(&certificateType); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(certificateType.Name) == "" {
		c.JSON(400, gin.H{"error": "Name is required"})
		return
	}

	if err := cc.service.UpdateCertificateType(id, &certificateType); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Certificate type updated successfully"})
}

func (cc *CertificateTypeController) DeleteCertificateType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := cc.service.DeleteCertificateType(id); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Certificate type deleted successfully"})
}
