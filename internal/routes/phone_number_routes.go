package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/noshow_platform/internal/auth"
	"github.com/noshow_platform/internal/handlers"
)

// SetupPhoneNumberRoutes registers the tenant-facing and administrative
// phone number routes.
func SetupPhoneNumberRoutes(router *gin.RouterGroup, phoneNumberHandler *handlers.PhoneNumberHandler, adminHandler *handlers.PhoneNumberAdminHandler) {
	apiV1 := router.Group("/v1")

	// tenant routes: any authenticated caller
	numbers := apiV1.Group("/phone-numbers")
	numbers.Use(auth.JWTMiddleware())
	{
		numbers.GET("/available", phoneNumberHandler.GetAvailablePhoneNumbers)
		numbers.GET("", phoneNumberHandler.GetAssistantPhoneNumbers)
		numbers.POST("/assign", phoneNumberHandler.AssignPhoneNumber)
		numbers.POST("/unassign", phoneNumberHandler.UnassignPhoneNumber)
	}

	// admin routes: authenticated + admin role
	admin := apiV1.Group("/admin")
	admin.Use(auth.JWTMiddleware(), auth.AdminRequired())
	{
		admin.GET("/phone-numbers", adminHandler.GetAllPhoneNumbers)
		admin.POST("/phone-numbers", adminHandler.CreatePhoneNumber)
		admin.DELETE("/phone-numbers", adminHandler.DeletePhoneNumber)
		admin.POST("/phone-numbers/purchase", adminHandler.PurchasePhoneNumber)
		admin.POST("/phone-numbers/release", adminHandler.ReleasePhoneNumber)
		admin.GET("/carrier/available-numbers", adminHandler.SearchCarrierNumbers)
		admin.GET("/carrier/numbers", adminHandler.ListCarrierNumbers)
		admin.GET("/interactions", adminHandler.GetInteractions)
	}
}
