package product_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Create a new product. Slugs must be unique.
// @Tags Storefront - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product payload"
// @Success 201 {object} models.ApiResponse "Product created successfully"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 409 {object} models.ApiResponse "Slug already exists"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /products [post]
func CreateProduct(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid product payload", err.Error()))
		return
	}

	var existing int64
	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&models.Product{}).
		Where("slug = ?", req.Slug).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this slug already exists"))
		return
	}

	product := models.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		IsNew:       req.IsNew,
		IsTrending:  req.IsTrending,
	}

	if err := config.StoreGorm.WithContext(ctx).Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
