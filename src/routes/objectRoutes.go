package routes

import (
	"github.com/ChronoCert/ChronoCert-Backend/src/controllers"
	"github.com/ChronoCert/ChronoCert-Backend/src/middleware"
	"github.com/ChronoCert/ChronoCert-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupObjectRoutes(router *gin.Engine, service *services.ObjectService, attachmentService *services.AttachmentService) {
	controller := controllers.NewObjectController(service)
	attachmentController := controllers.NewAttachmentController(attachmentService, service)

	// Protected routes
	objectGroup := router.Group("/objects")
	objectGroup.Use(middleware.AuthMiddleware())
	{
		objectGroup.GET("/:id", controller.GetObjectByID)
		objectGroup.PUT("/:id", controller.UpdateObject)
		objectGroup.POST("/import", controller.ImportObjectsFromExcel)

		// Attachments (report images and documents)
		objectGroup.POST("/:id/attachments", attachmentController.UploadAttachment)
		objectGroup.POST("/:id/attachments/drive", attachmentController.ImportFromDrive)
		objectGroup.GET("/:id/attachments", attachmentController.GetAttachmentsByField)
		objectGroup.GET("/:id/attachments/file", attachmentController.ServeAttachment)
		objectGroup.DELETE("/:id/attachments", attachmentController.DeleteAttachments)
	}
}
