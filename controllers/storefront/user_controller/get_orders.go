package user_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// GetOrders godoc
// @Summary Get order history
// @Description Get the authenticated user's orders with their line items, newest first.
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Orders fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /user/orders [get]
func GetOrders(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	orders := make([]models.Order, 0)
	err := config.StoreGorm.
		WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", orders))
}
