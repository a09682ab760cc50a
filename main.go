package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ChronoCert/ChronoCert-Backend/src/db"
	"github.com/ChronoCert/ChronoCert-Backend/src/middleware"
	"github.com/ChronoCert/ChronoCert-Backend/src/models"
	"github.com/ChronoCert/ChronoCert-Backend/src/routes"
	"github.com/ChronoCert/ChronoCert-Backend/src/seed"
	"github.com/ChronoCert/ChronoCert-Backend/src/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func main() {

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// Database connection
	database, err := db.Connect()
	if err != nil {
		zlog.Fatal().Err(err).Msg("error connecting to database")
	}

	// Auto-migrate models
	if err := database.AutoMigrate(
		&models.UserModel{},
		&models.CertificateTypeModel{},
		&models.ObjectModel{},
		&models.ObjectAttributesModel{},
		&models.CertificateModel{},
		&models.AttachmentModel{},
	); err != nil {
		zlog.Fatal().Err(err).Msg("error during auto-migration")
	}

	// JWT secret
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		zlog.Fatal().Msg("JWT_SECRET_KEY must be set")
	}
	middleware.SetSecretKey(secret)

	// Seed default admin and certificate type tiers
	seed.Seed(database)

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	userService := services.NewUserService(database)
	certificateTypeService := services.NewCertificateTypeService(database)
	certificateService := services.NewCertificateService(database)
	objectService := services.NewObjectService(database)
	attachmentService := services.NewAttachmentService(database)
	reportService := services.NewReportService(database, certificateService)

	// Routes setup
	routes.SetupUserRoutes(router, userService)
	routes.SetupCertificateTypeRoutes(router, certificateTypeService)
	routes.SetupCertificateRoutes(router, certificateService, reportService)
	routes.SetupObjectRoutes(router, objectService, attachmentService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "ChronoCert API")
	})

	// Server run with graceful shutdown
	server := &http.Server{Addr: host, Handler: router}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Str("host", host).Msg("error starting server")
		}
	}()
	zlog.Info().Str("host", host).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zlog.Error().Err(err).Msg("forced shutdown")
	}
}
