package controllers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ChronoCert/ChronoCert-Backend/src/dtos"
	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/report"
	"github.com/ChronoCert/ChronoCert-Backend/src/services"
	"github.com/ChronoCert/ChronoCert-Backend/src/utils"
	"github.com/gin-gonic/gin"
)

type AttachmentController struct {
	service       *services.AttachmentService
	objectService *services.ObjectService
}

func NewAttachmentController(service *services.AttachmentService, objectService *services.ObjectService) *AttachmentController {
	return &AttachmentController{service: service, objectService: objectService}
}

func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "uploads/attachments"
}

// UploadAttachment stores one file for a report field. The stored path in
// the response is what the form puts into the field's value list. Image
// fields only accept .jpg/.png.
func (ac *AttachmentController) UploadAttachment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	// Verify that the object exists
	if _, err := ac.objectService.GetObjectByID(id); err != nil {
		c.JSON(404, gin.H{"error": "Object not found"})
		return
	}

	fieldKey := c.PostForm("fieldKey")
	if !services.ValidFieldKey(fieldKey) {
		c.JSON(400, gin.H{"error": "Unknown attachment field"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	field, _ := report.Lookup(fieldKey)
	if field.Kind == report.KindImages && !services.IsAllowedImage(header.Filename) {
		c.JSON(400, gin.H{"error": "Image must be a .jpg or .png file"})
		return
	}
	if field.Kind == report.KindDocuments {
		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") && contentType != "application/pdf" {
			c.JSON(400, gin.H{"error": "Document must be an image or PDF"})
			return
		}
	}

	// Create directories if they don't exist
	dir := uploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.JSON(500, gin.H{"error": "Could not create upload directory"})
		return
	}

	// Generate unique filename
	filename := fmt.Sprintf("object_%d_%s_%d_%s", id, fieldKey, time.Now().Unix(), header.Filename)
	filePath := filepath.Join(dir, filename)

	// Save file
	dst, err := os.Create(filePath)
	if err != nil {
		c.JSON(500, gin.H{"error": "Could not save file"})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		c.JSON(500, gin.H{"error": "Could not save file"})
		return
	}

	attachment := models.AttachmentModel{
		ObjectID:     id,
		FieldKey:     fieldKey,
		Filename:     filename,
		OriginalName: header.Filename,
		Path:         filePath,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := ac.service.SaveAttachment(&attachment); err != nil {
		// Clean up file if DB save fails
		os.Remove(filePath)
		c.JSON(500, gin.H{"error": "Could not save attachment metadata"})
		return
	}

	c.JSON(200, attachment)
}

// ImportFromDrive downloads a file shared through a Google Drive URL and
// stores it as an attachment of the given field.
func (ac *AttachmentController) ImportFromDrive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	if _, err := ac.objectService.GetObjectByID(id); err != nil {
		c.JSON(404, gin.H{"error": "Object not found"})
		return
	}

	var dto dtos.DriveImportDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if !services.ValidFieldKey(dto.FieldKey) {
		c.JSON(400, gin.H{"error": "Unknown attachment field"})
		return
	}
	if !utils.IsGoogleDriveURL(dto.URL) {
		c.JSON(400, gin.H{"error": "Not a Google Drive URL"})
		return
	}

	fileID, err := utils.ExtractFileIDFromURL(dto.URL)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	body, originalName, err := utils.DownloadFileFromGoogleDrive(fileID)
	if err != nil {
		c.JSON(502, gin.H{"error": err.Error()})
		return
	}
	defer body.Close()

	field, _ := report.Lookup(dto.FieldKey)
	if field.Kind == report.KindImages && !services.IsAllowedImage(originalName) {
		c.JSON(400, gin.H{"error": "Image must be a .jpg or .png file"})
		return
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		c.JSON(500, gin.H{"error": "Could not create upload directory"})
		return
	}

	filename := fmt.Sprintf("object_%d_%s_%d_%s", id, dto.FieldKey, time.Now().Unix(), originalName)
	filePath := filepath.Join(dir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		c.JSON(500, gin.H{"error": "Could not save file"})
		return
	}
	defer dst.Close()

	size, err := io.Copy(dst, body)
	if err != nil {
		c.JSON(500, gin.H{"error": "Could not save file"})
		return
	}

	attachment := models.AttachmentModel{
		ObjectID:     id,
		FieldKey:     dto.FieldKey,
		Filename:     filename,
		OriginalName: originalName,
		Path:         filePath,
		Size:         size,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := ac.service.SaveAttachment(&attachment); err != nil {
		os.Remove(filePath)
		c.JSON(500, gin.H{"error": "Could not save attachment metadata"})
		return
	}

	c.JSON(200, attachment)
}

// GetAttachmentsByField lists the stored files of one report field
func (ac *AttachmentController) GetAttachmentsByField(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	fieldKey := c.Query("fieldKey")
	if fieldKey == "" {
		c.JSON(400, gin.H{"error": "fieldKey parameter is required"})
		return
	}

	attachments, err := ac.service.GetAttachmentsByField(id, fieldKey)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, attachments)
}

// ServeAttachment serves a stored file with cache headers
func (ac *AttachmentController) ServeAttachment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	path := c.Query("path")
	if path == "" {
		c.JSON(400, gin.H{"error": "path parameter is required"})
		return
	}

	attachment, err := ac.service.GetAttachmentByPath(id, path)
	if err != nil {
		c.JSON(404, gin.H{"error": "Attachment not found"})
		return
	}

	// Verify that the file exists
	fileInfo, err := os.Stat(attachment.Path)
	if os.IsNotExist(err) {
		c.JSON(404, gin.H{"error": "Attachment file not found"})
		return
	}

	// Cache headers
	lastModified := fileInfo.ModTime().UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT")
	etag := fmt.Sprintf(`"%d-%d"`, attachment.ID, attachment.UpdatedAt.Unix())

	// Cache for 1 year (report images rarely change)
	c.Header("Cache-Control", "public, max-age=31536000") // 1 year
	c.Header("ETag", etag)
	c.Header("Last-Modified", lastModified)

	// Verify If-None-Match (ETag)
	if match := c.GetHeader("If-None-Match"); match == etag {
		c.Status(304) // Not Modified
		return
	}

	// Verify If-Modified-Since
	if modSince := c.GetHeader("If-Modified-Since"); modSince != "" {
		if t, err := time.Parse("Mon, 02 Jan 2006 15:04:05 GMT", modSince); err == nil {
			if !fileInfo.ModTime().After(t) {
				c.Status(304) // Not Modified
				return
			}
		}
	}

	// Serve file with correct content type
	c.Header("Content-Type", attachment.ContentType)
	c.File(attachment.Path)
}

// DeleteAttachments removes stored files by path
func (ac *AttachmentController) DeleteAttachments(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid ID format"})
		return
	}

	var body struct {
		Paths []string `json:"paths" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	if err := ac.service.DeleteAttachments(id, body.Paths); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Attachments deleted successfully"})
}
