package category_controller

import (
	"errors"
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCategoryBySlug godoc
// @Summary Get a single category
// @Description Retrieve one category by its URL slug.
// @Tags Storefront - Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.ApiResponse "Category fetched successfully"
// @Failure 404 {object} models.ApiResponse "Category not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /categories/{slug} [get]
func GetCategoryBySlug(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	slug := c.Param("slug")

	var category models.Category
	err := config.StoreGorm.
		WithContext(ctx).
		Where("slug = ?", slug).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category fetched successfully", category))
}
