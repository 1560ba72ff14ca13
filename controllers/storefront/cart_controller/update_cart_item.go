package cart_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateCartItem godoc
// @Summary Update cart item quantity
// @Description Set the quantity of a cart item owned by the authenticated user.
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart item ID"
// @Param item body models.UpdateCartItemRequest true "Quantity payload"
// @Success 200 {object} models.ApiResponse "Cart item updated"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Cart item not found"
// @Router /cart/{id} [patch]
func UpdateCartItem(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid cart item id"))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid cart payload", err.Error()))
		return
	}

	// Ownership check is part of the lookup
	var item models.CartItem
	err = config.StoreGorm.
		WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart item not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart item"))
		return
	}

	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&item).
		Update("quantity", req.Quantity).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart item"))
		return
	}

	item.Quantity = req.Quantity
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item updated", item))
}
