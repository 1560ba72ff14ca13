package cart_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// GetCartCount godoc
// @Summary Get cart item count
// @Description Get the total quantity across the authenticated user's cart, for the header badge.
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Cart count fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /cart/count [get]
func GetCartCount(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var count int64
	err := config.StoreGorm.
		WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&count).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cart count"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart count fetched successfully", gin.H{"count": count}))
}
