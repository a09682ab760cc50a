package controllers

import (
	"strconv"
	"strings"

	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type ObjectController struct {
	service *services.ObjectService
}

func NewObjectController(service *services.ObjectService) *ObjectController {
	return &ObjectController{service: service}
}

func (oc *ObjectController) GetObjectByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	object, err := oc.service.GetObjectByID(id)
	if err != nil {
		c.JSON(404, gin.H{"error": "Object not found"})
		return
	}
	c.JSON(200, object)
}

func (oc *ObjectController) UpdateObject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var object models.ObjectModel
	if err := c.ShouldBindJSON(&object); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(object.Brand) == "" {
		c.JSON(400, gin.H{"error": "Brand is required"})
		return
	}

	if err := oc.service.UpdateObject(id, &object); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Object updated successfully"})
}

// ImportObjectsFromExcel bulk-imports watch objects from an uploaded
// spreadsheet.
func (oc *ObjectController) ImportObjectsFromExcel(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		c.JSON(400, gin.H{"error": "File must be an .xlsx spreadsheet"})
		return
	}

	result, err := oc.service.ImportObjectsFromExcel(file)
	if err != nil {
		if result != nil {
			c.JSON(422, gin.H{"error": err.Error(), "rowErrors": result.Errors})
			return
		}
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{"imported": result.Imported, "rowErrors": result.Errors})
}
