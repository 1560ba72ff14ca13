package category_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

func TestGetMissesWhenEmpty(t *testing.T) {
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)
}

func TestSetThenGetReturnsCachedList(t *testing.T) {
	Invalidate()

	categories := []models.Category{
		{ID: 1, Name: "Books", Slug: "books"},
		{ID: 2, Name: "Fashion", Slug: "fashion"},
	}
	Set(categories)

	cached, ok := Get()
	require.True(t, ok)
	assert.Equal(t, categories, cached)
}

func TestInvalidateDropsCachedList(t *testing.T) {
	Set([]models.Category{{ID: 1, Name: "Books", Slug: "books"}})
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)
}
