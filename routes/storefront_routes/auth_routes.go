package storefront_routes

import (
	"github.com/JK-asthetic/SmartStoreFront/controllers/storefront/auth_controller"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", auth_controller.Register)
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)
	}
}
