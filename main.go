// @title SmartStoreFront API
// @version 1.0
// @description SmartStoreFront Backend API Documentation
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/JK-asthetic/SmartStoreFront/agents"
	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/controllers/storefront/chat_controller"
	_ "github.com/JK-asthetic/SmartStoreFront/docs"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/JK-asthetic/SmartStoreFront/routes/storefront_routes"
)

func init() {
	_ = godotenv.Load()
}

// categoryLookup feeds the recommendation agent the live category list.
type categoryLookup struct{}

func (categoryLookup) Categories() []models.Category {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var categories []models.Category
	if err := config.StoreGorm.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil
	}
	return categories
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Assistant wiring. The server runs without Gemini, falling back to
	// keyword intent routing.
	gemini, err := agents.NewGeminiLLM(context.Background())
	if err != nil {
		log.Printf("⚠️ Gemini unavailable, assistant falls back to keyword routing: %v", err)
	}
	var llm agents.LLM
	if gemini != nil {
		llm = gemini
	}
	chat_controller.Init(agents.NewService(config.StoreGorm, llm, categoryLookup{}))
	log.Println("✅ Chat assistant initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := config.StoreDB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Register API routes
	api := router.Group("/api/v1")

	storefront_routes.SetupAuthRoutes(api)
	storefront_routes.SetupStorefrontRoutes(api)
	storefront_routes.SetupUserRoutes(api)
	storefront_routes.SetupChatRoutes(api)
	storefront_routes.SetupNewsletterRoutes(api)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
