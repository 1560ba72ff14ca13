package cart_controller

import (
	"errors"
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddCartItem godoc
// @Summary Add to cart
// @Description Add a product to the cart. Adding a product already in the cart merges quantities instead of creating a duplicate row.
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.AddCartItemRequest true "Cart item payload"
// @Success 201 {object} models.ApiResponse "Item added to cart"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /cart [post]
func AddCartItem(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid cart payload", err.Error()))
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	var productCount int64
	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", req.ProductID).
		Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to cart"))
		return
	}
	if productCount == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	var item models.CartItem
	err := config.StoreGorm.
		WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, req.ProductID).
		First(&item).Error

	switch {
	case err == nil:
		// Merge quantities into the existing row
		item.Quantity += quantity
		if err := config.StoreGorm.
			WithContext(ctx).
			Model(&item).
			Update("quantity", item.Quantity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to cart"))
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.CartItem{
			UserID:    userID,
			ProductID: req.ProductID,
			Quantity:  quantity,
		}
		if err := config.StoreGorm.WithContext(ctx).Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to cart"))
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add to cart"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item added to cart", item))
}
