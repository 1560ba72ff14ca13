package storefront_routes

import (
	store_category "github.com/JK-asthetic/SmartStoreFront/controllers/storefront/category_controller"
	store_product "github.com/JK-asthetic/SmartStoreFront/controllers/storefront/product_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes sets up the public catalog routes
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Product routes
	products := router.Group("/products")
	{
		products.GET("", store_product.GetProducts) // List with filters
		products.POST("", store_product.CreateProduct)
		products.GET("/:slug", store_product.GetProductBySlug) // Single product
	}

	// Category routes
	categories := router.Group("/categories")
	{
		categories.GET("", store_category.GetCategories) // List all, cached
		categories.POST("", store_category.CreateCategory)
		categories.GET("/:slug", store_category.GetCategoryBySlug) // Single category
	}
}
