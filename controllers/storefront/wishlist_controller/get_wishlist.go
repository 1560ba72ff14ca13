package wishlist_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// GetWishlist godoc
// @Summary Get wishlist
// @Description Get the authenticated user's wishlist with product details.
// @Tags Wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Wishlist fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /wishlist [get]
func GetWishlist(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	items := make([]models.WishlistItem, 0)
	err := config.StoreGorm.
		WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
		return
	}

	result := make([]models.WishlistItemWithProduct, 0, len(items))
	if len(items) > 0 {
		productIDs := make([]int, 0, len(items))
		for _, item := range items {
			productIDs = append(productIDs, item.ProductID)
		}

		var products []models.Product
		if err := config.StoreGorm.
			WithContext(ctx).
			Where("id IN ?", productIDs).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist"))
			return
		}

		byID := make(map[int]*models.Product, len(products))
		for i := range products {
			byID[products[i].ID] = &products[i]
		}

		for _, item := range items {
			result = append(result, models.WishlistItemWithProduct{
				WishlistItem: item,
				Product:      byID[item.ProductID],
			})
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", result))
}
