package wishlist_controller

import (
	"net/http"
	"strconv"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// DeleteWishlistItem godoc
// @Summary Remove from wishlist
// @Description Remove a wishlist item owned by the authenticated user.
// @Tags Wishlist
// @Produce json
// @Security BearerAuth
// @Param id path int true "Wishlist item ID"
// @Success 200 {object} models.ApiResponse "Item removed from wishlist"
// @Failure 400 {object} models.ApiResponse "Invalid wishlist item id"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Wishlist item not found"
// @Router /wishlist/{id} [delete]
func DeleteWishlistItem(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid wishlist item id"))
		return
	}

	// Ownership check is part of the delete condition
	result := config.StoreGorm.
		WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove wishlist item"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Wishlist item not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from wishlist", nil))
}
