package category_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/cache/category_cache"
	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get all categories, ordered by name. Served from an in-process cache with a 5 minute TTL.
// @Tags Storefront - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /categories [get]
func GetCategories(c *gin.Context) {
	if cached, ok := category_cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := make([]models.Category, 0)
	if err := config.StoreGorm.
		WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	category_cache.Set(categories)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
