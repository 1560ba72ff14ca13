package cart_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Get cart
// @Description Get the authenticated user's cart items with product details.
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Cart fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /cart [get]
func GetCart(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	items := make([]models.CartItem, 0)
	err := config.StoreGorm.
		WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	result, err := attachProducts(ctx, items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", result))
}
