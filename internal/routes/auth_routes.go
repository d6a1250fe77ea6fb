package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/noshow_platform/internal/auth"
	"github.com/noshow_platform/internal/handlers"
)

// SetupAuthRoutes registers the authentication routes.
func SetupAuthRoutes(router *gin.RouterGroup) {
	apiV1 := router.Group("/v1")
	{
		// public auth routes (login)
		publicAuthGroup := apiV1.Group("/auth")
		{
			// POST /api/v1/auth/login
			publicAuthGroup.POST("/login", handlers.Login)
		}

		// protected auth routes (logout)
		protectedAuthGroup := apiV1.Group("/auth")
		protectedAuthGroup.Use(auth.JWTMiddleware())
		{
			// POST /api/v1/auth/logout
			protectedAuthGroup.POST("/logout", handlers.LogoutHandler)
		}
	}
}
