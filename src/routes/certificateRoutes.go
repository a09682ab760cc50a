package routes

import (
	"github.com/ChronoCert/ChronoCert-Backend/src/controllers"
	"github.com/ChronoCert/ChronoCert-Backend/src/middleware"
	"github.com/ChronoCert/ChronoCert-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCertificateRoutes(router *gin.Engine, service *services.CertificateService, reportService *services.ReportService) {
	controller := controllers.NewCertificateController(service)
	reportController := controllers.NewReportController(reportService)

	// Protected routes
	certificateGroup := router.Group("/certificates")
	certificateGroup.Use(middleware.AuthMiddleware())
	{
		// CRUD
		certificateGroup.GET("", controller.GetAllCertificates)
		certificateGroup.GET("/summaries", controller.GetCertificateSummaries)
		certificateGroup.GET("/:id", controller.GetCertificateByID)
		certificateGroup.POST("", controller.CreateCertificate)
		certificateGroup.PATCH("/:id/status", controller.ChangeStatus)
		certificateGroup.DELETE("/:id", controller.DeleteCertificate)

		// Report session
		certificateGroup.GET("/:id/report", reportController.LoadReport)
		certificateGroup.PUT("/:id/report", reportController.SaveReport)
		certificateGroup.POST("/:id/report/finish", reportController.FinishReport)
		certificateGroup.POST("/:id/report/reopen", reportController.ReopenReport)
	}
}
