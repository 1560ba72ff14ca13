package product_controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/listing"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// buildOrderClause maps a listing sort onto SQL. Missing created_at sorts as
// earliest, missing rating as zero, matching the fallback the client applies.
func buildOrderClause(sort listing.Sort) string {
	switch sort {
	case listing.SortPriceAsc:
		return "p.price ASC, p.id ASC"
	case listing.SortPriceDesc:
		return "p.price DESC, p.id ASC"
	case listing.SortNewest:
		return "COALESCE(p.created_at, 'epoch'::timestamptz) DESC, p.id ASC"
	case listing.SortRating:
		return "COALESCE(p.rating, 0) DESC, p.id ASC"
	}
	// featured keeps insertion order
	return "p.id ASC"
}

// recommendedSample caps the "recommended" filter: there is no personalization
// signal to rank on yet, so a small sample of the catalog stands in for picks.
const recommendedSample = 8

// applyProductFilter maps the filter query value onto conditions. Unknown
// values are ignored so the rest of the query still applies.
func applyProductFilter(filter string, conditions []string, limit int) ([]string, int) {
	switch filter {
	case "new":
		conditions = append(conditions, "p.is_new = TRUE")
	case "trending":
		conditions = append(conditions, "p.is_trending = TRUE")
	case "sale":
		conditions = append(conditions, "p.old_price IS NOT NULL AND p.old_price > p.price")
	case "recommended":
		if limit > recommendedSample {
			limit = recommendedSample
		}
	}
	return conditions, limit
}

func parseLimit(c *gin.Context) int {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "1000"))
	if limit < 1 || limit > 1000 {
		limit = 1000
	}
	return limit
}

// parsePriceBound accepts a bound only when it is a number inside the slider
// range. Anything else is ignored so the rest of the query still applies.
func parsePriceBound(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < listing.PriceFloor || v > listing.PriceCeiling {
		return 0, false
	}
	return v, true
}

// ─────────────────────────────────────────────────────────────
// Database fetcher
// ─────────────────────────────────────────────────────────────

func fetchProductsFromDB(
	conditions []string,
	orderClause string,
	args []interface{},
	limit int,
) ([]models.Product, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	whereClause := "TRUE"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT
			p.id,
			p.name,
			p.slug,
			p.description,
			p.price,
			p.old_price,
			p.rating,
			p.review_count,
			p.image_url,
			p.category_id,
			p.is_new,
			p.is_trending,
			p.created_at
		FROM products p
		WHERE %s
		ORDER BY %s
		LIMIT ?
	`, whereClause, orderClause)

	queryArgs := append(args, limit)

	products := make([]models.Product, 0)
	if err := config.StoreGorm.
		WithContext(ctx).
		Raw(query, queryArgs...).
		Scan(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}
