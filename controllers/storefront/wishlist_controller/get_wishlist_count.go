package wishlist_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// GetWishlistCount godoc
// @Summary Get wishlist count
// @Description Get the number of items in the authenticated user's wishlist, for the header badge.
// @Tags Wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Wishlist count fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /wishlist/count [get]
func GetWishlistCount(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var count int64
	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch wishlist count"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist count fetched successfully", gin.H{"count": count}))
}
