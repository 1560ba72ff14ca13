package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

func strPtr(s string) *string { return &s }

func TestApplyCommandCategoriesOnlyLeavesOtherFieldsAlone(t *testing.T) {
	state := DefaultState()
	state.Search = "lamps"
	state.Sort = SortNewest
	state.PriceRange = [2]float64{10, 500}
	state.ViewMode = ViewCompact

	res := state.ApplyCommand(models.FilterCommand{
		Action:     models.FilterActionApply,
		Categories: []string{"books"},
	})

	assert.True(t, res.Applied)
	assert.False(t, res.SearchChanged)
	assert.Equal(t, []string{"books"}, state.Categories)
	assert.Equal(t, [2]float64{10, 500}, state.PriceRange)
	assert.Equal(t, SortNewest, state.Sort)
	assert.Equal(t, "lamps", state.Search)
	assert.Equal(t, ViewCompact, state.ViewMode)
}

func TestApplyCommandReplacesCategorySelection(t *testing.T) {
	state := DefaultState()
	state.Categories = []string{"fashion", "beauty"}

	state.ApplyCommand(models.FilterCommand{
		Action:     models.FilterActionApply,
		Categories: []string{"electronics"},
	})

	// Replacement, never a union.
	assert.Equal(t, []string{"electronics"}, state.Categories)
}

func TestApplyCommandEmptySearchClearsWhileAbsentLeavesUntouched(t *testing.T) {
	state := DefaultState()
	state.Search = "headphones"

	res := state.ApplyCommand(models.FilterCommand{
		Action: models.FilterActionApply,
		Search: strPtr(""),
	})
	assert.Equal(t, "", state.Search)
	assert.True(t, res.SearchChanged)

	state.Search = "headphones"
	res = state.ApplyCommand(models.FilterCommand{
		Action: models.FilterActionApply,
		Sort:   "newest",
	})
	assert.Equal(t, "headphones", state.Search)
	assert.False(t, res.SearchChanged)
}

func TestApplyCommandPartialApplicationOnInvalidFields(t *testing.T) {
	state := DefaultState()

	res := state.ApplyCommand(models.FilterCommand{
		Action:     models.FilterActionApply,
		Categories: []string{"fitness"},
		Sort:       "alphabetical",      // unknown sort key: dropped
		ViewMode:   "carousel",          // unknown view mode: dropped
		PriceRange: &[2]float64{50, 20}, // min > max: dropped
	})

	// The valid field still applies.
	assert.True(t, res.Applied)
	assert.Equal(t, []string{"fitness"}, state.Categories)
	assert.Equal(t, SortFeatured, state.Sort)
	assert.Equal(t, ViewGrid, state.ViewMode)
	assert.Equal(t, [2]float64{PriceFloor, PriceCeiling}, state.PriceRange)
}

func TestApplyCommandRejectsUnknownAction(t *testing.T) {
	state := DefaultState()

	res := state.ApplyCommand(models.FilterCommand{
		Action:     "reset-everything",
		Categories: []string{"books"},
	})

	assert.False(t, res.Applied)
	assert.Empty(t, state.Categories)
	assert.False(t, state.AssistantApplied)
}

func TestApplyCommandsAccumulateIndependentFields(t *testing.T) {
	state := DefaultState()

	state.ApplyCommand(models.FilterCommand{
		Action:     models.FilterActionApply,
		PriceRange: &[2]float64{0, 50},
	})
	state.ApplyCommand(models.FilterCommand{
		Action: models.FilterActionApply,
		Sort:   "rating-descending",
	})

	// Both commands are reflected: per-field accumulation, not last-write-wins
	// on the whole state.
	assert.Equal(t, [2]float64{0, 50}, state.PriceRange)
	assert.Equal(t, SortRating, state.Sort)
}

func TestApplyCommandSetsAssistantProvenance(t *testing.T) {
	state := DefaultState()

	state.ApplyCommand(models.FilterCommand{
		Action: models.FilterActionApply,
		Sort:   "newest",
	})

	assert.True(t, state.AssistantApplied)
}

func TestParseSortAcceptsBothSpellings(t *testing.T) {
	for in, want := range map[string]Sort{
		"price-asc":         SortPriceAsc,
		"price-ascending":   SortPriceAsc,
		"price-desc":        SortPriceDesc,
		"price-descending":  SortPriceDesc,
		"newest":            SortNewest,
		"rating":            SortRating,
		"rating-descending": SortRating,
		"featured":          SortFeatured,
	} {
		got, ok := ParseSort(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseSort("alphabetical")
	assert.False(t, ok)
}
