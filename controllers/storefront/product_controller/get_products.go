package product_controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/JK-asthetic/SmartStoreFront/listing"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary Get storefront products
// @Description Retrieve products with optional search, category, price range, and sorting filters. Categories are matched by slug; price bounds are inclusive.
// @Tags Storefront - Products
// @Produce json
// @Param search query string false "Search query (name or description)"
// @Param category query []string false "Category slugs (repeatable)"
// @Param filter query string false "Product flag filter (new, trending, sale, recommended)"
// @Param sortBy query string false "Sort order (featured, price-asc, price-desc, newest, rating)" default(featured)
// @Param priceMin query number false "Minimum price (inclusive)"
// @Param priceMax query number false "Maximum price (inclusive)"
// @Param limit query int false "Max items to return" default(1000)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /products [get]
func GetProducts(c *gin.Context) {
	limit := parseLimit(c)

	searchQuery := c.Query("search")
	categorySlugs := c.QueryArray("category")
	sortParam := c.Query("sortBy")

	conditions := []string{}
	args := []interface{}{}

	// Product flag filter (new, trending, sale, recommended)
	conditions, limit = applyProductFilter(c.Query("filter"), conditions, limit)

	// Search query (name or description)
	if searchQuery != "" {
		conditions = append(conditions, "(p.name ILIKE ? OR p.description ILIKE ?)")
		args = append(args, "%"+searchQuery+"%", "%"+searchQuery+"%")
	}

	// Category filter by slug (multiple). Products without a category are
	// excluded whenever a category selection is active.
	if len(categorySlugs) > 0 {
		placeholders := make([]string, len(categorySlugs))
		for i, slug := range categorySlugs {
			placeholders[i] = "?"
			args = append(args, strings.TrimSpace(slug))
		}
		cond := fmt.Sprintf(
			"p.category_id IN (SELECT id FROM categories WHERE slug IN (%s))",
			strings.Join(placeholders, ","),
		)
		conditions = append(conditions, cond)
	}

	// Price range filter (inclusive bounds). Invalid bounds are dropped,
	// not treated as errors.
	if minPrice, ok := parsePriceBound(c.Query("priceMin")); ok {
		conditions = append(conditions, "p.price >= ?")
		args = append(args, minPrice)
	}
	if maxPrice, ok := parsePriceBound(c.Query("priceMax")); ok {
		conditions = append(conditions, "p.price <= ?")
		args = append(args, maxPrice)
	}

	// Unknown sort values fall back to featured order
	sort, _ := listing.ParseSort(sortParam)
	orderClause := buildOrderClause(sort)

	products, err := fetchProductsFromDB(conditions, orderClause, args, limit)
	if err != nil {
		log.Printf("❌ Failed to fetch products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", products))
}
