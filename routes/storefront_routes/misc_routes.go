package storefront_routes

import (
	"github.com/JK-asthetic/SmartStoreFront/controllers/storefront/chat_controller"
	"github.com/JK-asthetic/SmartStoreFront/controllers/storefront/newsletter_controller"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/gin-gonic/gin"
)

// SetupChatRoutes sets up the assistant endpoint. Rate limited because every
// message can fan out to the LLM.
func SetupChatRoutes(router *gin.RouterGroup) {
	router.POST("/chat", middleware.ChatRateLimiter(), chat_controller.Chat)
}

// SetupNewsletterRoutes sets up the newsletter signup endpoint
func SetupNewsletterRoutes(router *gin.RouterGroup) {
	router.POST("/newsletter", middleware.NewsletterRateLimiter(), newsletter_controller.Subscribe)
}
