package routes

import (
	"github.com/ChronoCert/ChronoCert-Backend/src/controllers"
	"github.com/ChronoCert/ChronoCert-Backend/src/middleware"
	"github.com/ChronoCert/ChronoCert-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	controller := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", controller.AuthenticateUser)

	// Protected routes
	user := router.Group("/users")
	user.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		user.GET("", controller.GetAllUsers)
		user.POST("", controller.CreateUser)
		user.DELETE("/:id", controller.DeleteUser)
	}
}
