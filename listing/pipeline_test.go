package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

func intPtr(i int) *int             { return &i }
func floatPtr(f float64) *float64   { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func product(name string, price float64, categoryID *int) models.Product {
	return models.Product{Name: name, Price: price, CategoryID: categoryID}
}

var testCategories = []models.Category{
	{ID: 1, Name: "Men", Slug: "men"},
	{ID: 2, Name: "Women", Slug: "women"},
}

func TestPriceFilterInclusiveAtBothBounds(t *testing.T) {
	products := []models.Product{
		product("at min", 10, nil),
		product("at max", 100, nil),
		product("just over", 100.01, nil),
		product("under", 9.99, nil),
	}

	state := DefaultState()
	state.PriceRange = [2]float64{10, 100}

	got := Visible(products, nil, state)
	require.Len(t, got, 2)
	assert.Equal(t, "at min", got[0].Name)
	assert.Equal(t, "at max", got[1].Name)
}

func TestCategoryFilterResolvesSlugsThroughIDJoin(t *testing.T) {
	products := []models.Product{
		product("shirt", 20, intPtr(1)),
		product("dress", 30, intPtr(2)),
		product("uncategorized", 5, nil),
	}

	state := DefaultState()
	state.Categories = []string{"men"}

	got := Visible(products, testCategories, state)
	require.Len(t, got, 1)
	assert.Equal(t, "shirt", got[0].Name)
}

func TestCategoryFilterWithUnloadedCategoriesExcludesWhenSelectionActive(t *testing.T) {
	products := []models.Product{product("shirt", 20, intPtr(1))}

	state := DefaultState()
	state.Categories = []string{"men"}

	// Category list not loaded yet: selection active, nothing can resolve.
	assert.Empty(t, Visible(products, nil, state))

	// No selection: products pass through regardless.
	state.Categories = nil
	assert.Len(t, Visible(products, nil, state), 1)
}

func TestSortPriceAscendingIsNonDecreasing(t *testing.T) {
	products := []models.Product{
		product("c", 30, nil),
		product("a", 10, nil),
		product("b", 20, nil),
	}

	state := DefaultState()
	state.Sort = SortPriceAsc

	got := Visible(products, nil, state)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}
}

func TestSortFeaturedPreservesFetchOrder(t *testing.T) {
	products := []models.Product{
		product("third", 30, nil),
		product("first", 10, nil),
		product("second", 20, nil),
	}

	got := Visible(products, nil, DefaultState())
	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].Name)
	assert.Equal(t, "first", got[1].Name)
	assert.Equal(t, "second", got[2].Name)
}

func TestSortNewestTreatsMissingTimestampAsEarliest(t *testing.T) {
	now := time.Now()
	products := []models.Product{
		{Name: "undated", Price: 1},
		{Name: "old", Price: 1, CreatedAt: timePtr(now.Add(-time.Hour))},
		{Name: "new", Price: 1, CreatedAt: timePtr(now)},
	}

	state := DefaultState()
	state.Sort = SortNewest

	got := Visible(products, nil, state)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].Name)
	assert.Equal(t, "old", got[1].Name)
	assert.Equal(t, "undated", got[2].Name)
}

func TestSortRatingTreatsMissingRatingAsZero(t *testing.T) {
	products := []models.Product{
		{Name: "unrated", Price: 1},
		{Name: "top", Price: 1, Rating: floatPtr(4.8)},
		{Name: "mid", Price: 1, Rating: floatPtr(3.1)},
	}

	state := DefaultState()
	state.Sort = SortRating

	got := Visible(products, nil, state)
	require.Len(t, got, 3)
	assert.Equal(t, "top", got[0].Name)
	assert.Equal(t, "mid", got[1].Name)
	assert.Equal(t, "unrated", got[2].Name)
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	products := []models.Product{
		product("first-at-20", 20, nil),
		product("second-at-20", 20, nil),
		product("cheap", 5, nil),
	}

	state := DefaultState()
	state.Sort = SortPriceAsc

	got := Visible(products, nil, state)
	require.Len(t, got, 3)
	assert.Equal(t, "cheap", got[0].Name)
	assert.Equal(t, "first-at-20", got[1].Name)
	assert.Equal(t, "second-at-20", got[2].Name)
}
