package cart_controller

import (
	"net/http"
	"strconv"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// DeleteCartItem godoc
// @Summary Remove from cart
// @Description Remove a cart item owned by the authenticated user.
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart item ID"
// @Success 200 {object} models.ApiResponse "Cart item removed"
// @Failure 400 {object} models.ApiResponse "Invalid cart item id"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Cart item not found"
// @Router /cart/{id} [delete]
func DeleteCartItem(c *gin.Context) {
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

	result := config.StoreGorm.
		WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove cart item"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart item not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart item removed", nil))
}
