package routes

import (
	"github.com/ChronoCert/ChronoCert-Backend/src/controllers"
	"github.com/ChronoCert/ChronoCert-Backend/src/middleware"
	"github.com/ChronoCert/ChronoCert-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCertificateTypeRoutes(router *gin.Engine, service *services.CertificateTypeService) {
	controller := controllers.NewCertificateTypeController(service)

	// Reading tiers is open to any authenticated user; writes are admin only
	typeGroup := router.Group("/certificate-types")
	typeGroup.Use(middleware.AuthMiddleware())
	{
		typeGroup.GET("", controller.GetAllCertificateTypes)
		typeGroup.GET("/:id", controller.GetCertificateTypeByID)
	}

	adminGroup := router.Group("/certificate-types")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		adminGroup.POST("", controller.CreateCertificateType)
		adminGroup.PUT("/:id", controller.UpdateCertificateType)
		adminGroup.DELETE("/:id", controller.DeleteCertificateType)
	}
}
