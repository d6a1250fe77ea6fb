package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/noshow_platform/configs"
	_ "github.com/noshow_platform/docs"
	"github.com/noshow_platform/internal/carrier"
	"github.com/noshow_platform/internal/handlers"
	"github.com/noshow_platform/internal/repositories"
	"github.com/noshow_platform/internal/routes"
	"github.com/noshow_platform/internal/services"
	"github.com/noshow_platform/pkg/db"
	"github.com/noshow_platform/pkg/logger"
)

// @title No-show Phone Number API
// @version 1.0
// @description Phone number lifecycle and assignment service for the No-show concierge platform.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configs.LoadConfig()

	zapLogger, err := logger.NewLogger(configs.AppConfig.LogLevel, "json", "noshow-phone-numbers")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db.InitDB()
	defer db.CloseDB()

	phoneNumberRepo := repositories.NewGormPhoneNumberRepository(db.GetDB())
	interactionRepo := repositories.NewGormInteractionRepository(db.GetDB())

	gateway := carrier.NewTwilioClient(
		configs.AppConfig.CarrierBaseURL,
		configs.AppConfig.CarrierAccountSID,
		configs.AppConfig.CarrierAuthToken,
		zapLogger,
	)

	smsWebhookURL := configs.AppConfig.SMSWebhookBaseURL + "/api/v1/sms/inbound"

	phoneNumberService := services.NewPhoneNumberService(phoneNumberRepo)
	adminService := services.NewPhoneNumberAdminService(phoneNumberRepo, interactionRepo, gateway, zapLogger)
	acquisitionService := services.NewAcquisitionService(phoneNumberRepo, interactionRepo, gateway, smsWebhookURL, zapLogger)

	phoneNumberHandler := handlers.NewPhoneNumberHandler(phoneNumberService)
	adminHandler := handlers.NewPhoneNumberAdminHandler(adminService, acquisitionService)

	router := gin.Default()
	routes.SetupRoutes(router, phoneNumberHandler, adminHandler)

	port := configs.AppConfig.ServerPort
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
