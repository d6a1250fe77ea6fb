package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noshow_platform/internal/handlers"
)

// SetupRoutes initializes all routes on the engine.
func SetupRoutes(router *gin.Engine, phoneNumberHandler *handlers.PhoneNumberHandler, adminHandler *handlers.PhoneNumberAdminHandler) {
	router.Use(cors.Default())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	SetupAuthRoutes(api)
	SetupPhoneNumberRoutes(api, phoneNumberHandler, adminHandler)
}
