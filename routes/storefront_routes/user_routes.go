package storefront_routes

import (
	"github.com/JK-asthetic/SmartStoreFront/controllers/storefront/cart_controller"
	"github.com/JK-asthetic/SmartStoreFront/controllers/storefront/user_controller"
	"github.com/JK-asthetic/SmartStoreFront/controllers/storefront/wishlist_controller"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up all user profile, cart, and wishlist routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		user.GET("/profile", user_controller.GetProfile)
		user.PATCH("/profile", user_controller.UpdateProfile)
		user.PATCH("/password", user_controller.UpdatePassword)

		// Shopping preferences
		user.GET("/preferences", user_controller.GetPreferences)
		user.POST("/preferences", user_controller.SavePreferences)

		// Orders
		user.GET("/orders", user_controller.GetOrders)
	}

	cart := router.Group("/cart")
	cart.Use(middleware.AuthMiddleware())
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("", cart_controller.AddCartItem)
		cart.GET("/count", cart_controller.GetCartCount)
		cart.PATCH("/:id", cart_controller.UpdateCartItem)
		cart.DELETE("/:id", cart_controller.DeleteCartItem)
	}

	wishlist := router.Group("/wishlist")
	wishlist.Use(middleware.AuthMiddleware())
	{
		wishlist.GET("", wishlist_controller.GetWishlist)
		wishlist.POST("", wishlist_controller.AddWishlistItem)
		wishlist.GET("/count", wishlist_controller.GetWishlistCount)
		wishlist.DELETE("/:id", wishlist_controller.DeleteWishlistItem)
	}
}
