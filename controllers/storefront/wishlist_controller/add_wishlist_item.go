package wishlist_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// AddWishlistItem godoc
// @Summary Add to wishlist
// @Description Add a product to the wishlist. Adding the same product twice returns 409.
// @Tags Wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.AddWishlistItemRequest true "Wishlist payload"
// @Success 201 {object} models.ApiResponse "Item added to wishlist"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 409 {object} models.ApiResponse "Already in wishlist"
// @Router /wishlist [post]
func AddWishlistItem(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid wishlist payload", err.Error()))
		return
	}

	var productCount int64
	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", req.ProductID).
		Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to wishlist"))
		return
	}
	if productCount == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	var existing int64
	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, req.ProductID).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to wishlist"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product is already in your wishlist"))
		return
	}

	item := models.WishlistItem{
		UserID:    userID,
		ProductID: req.ProductID,
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to wishlist"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item added to wishlist", item))
}
