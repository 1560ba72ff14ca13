package listing

import (
	"sort"
	"time"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

// Visible computes the displayed product sequence from the fetched collection
// and the current filter state. The apply order is fixed: price range, then
// category selection, then sort. Search never appears here; it is a fetch
// parameter, not a client-side step.
func Visible(products []models.Product, categories []models.Category, state FilterState) []models.Product {
	out := filterByPrice(products, state.PriceRange[0], state.PriceRange[1])
	out = filterByCategories(out, categories, state.Categories)
	return sortProducts(out, state.Sort)
}

// filterByPrice keeps products with min <= price <= max, inclusive on both
// ends.
func filterByPrice(products []models.Product, min, max float64) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Price >= min && p.Price <= max {
			out = append(out, p)
		}
	}
	return out
}

// filterByCategories keeps products whose category slug is in the selection.
// Products join categories by numeric id, while the selection (seeded from
// the URL or an agent command) carries slugs, so the category list must have
// loaded for the join to resolve. With an active selection an unresolvable
// product counts as "category unknown" and is excluded; with no selection
// everything passes through.
func filterByCategories(products []models.Product, categories []models.Category, selected []string) []models.Product {
	if len(selected) == 0 {
		return products
	}

	wanted := make(map[string]bool, len(selected))
	for _, slug := range selected {
		wanted[slug] = true
	}

	slugByID := make(map[int]string, len(categories))
	for _, c := range categories {
		slugByID[c.ID] = c.Slug
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID == nil {
			continue
		}
		if wanted[slugByID[*p.CategoryID]] {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts stable-sorts by the active key. "featured" preserves fetch
// order. Missing timestamps sort as earliest, missing ratings as zero.
func sortProducts(products []models.Product, key Sort) []models.Product {
	if key == SortFeatured {
		return products
	}

	out := append([]models.Product(nil), products...)
	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return createdAt(out[i]).After(createdAt(out[j]))
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return rating(out[i]) > rating(out[j])
		})
	}
	return out
}

func createdAt(p models.Product) time.Time {
	if p.CreatedAt == nil {
		return time.Time{}
	}
	return *p.CreatedAt
}

func rating(p models.Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}
