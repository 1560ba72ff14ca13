package category_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/cache/category_cache"
	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// CreateCategory godoc
// @Summary Create a category
// @Description Create a new category. Slugs must be unique.
// @Tags Storefront - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category payload"
// @Success 201 {object} models.ApiResponse "Category created successfully"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /categories [post]
func CreateCategory(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid category payload", err.Error()))
		return
	}

	var existing int64
	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&models.Category{}).
		Where("slug = ?", req.Slug).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this slug already exists"))
		return
	}

	category := models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := config.StoreGorm.WithContext(ctx).Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	category_cache.Invalidate()

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
