// Package listing owns the product listing's filter state and derives the
// displayed product sequence from (fetched collection × state). Category,
// price and sort changes are local re-filters; a search change mutates the
// fetch parameters and triggers a re-fetch.
package listing

import (
	"github.com/JK-asthetic/SmartStoreFront/models"
)

type Sort string

const (
	SortFeatured  Sort = "featured"
	SortPriceAsc  Sort = "price-ascending"
	SortPriceDesc Sort = "price-descending"
	SortNewest    Sort = "newest"
	SortRating    Sort = "rating-descending"
)

type ViewMode string

const (
	ViewGrid    ViewMode = "grid"
	ViewCompact ViewMode = "compact"
)

// Catalog price bounds backing the storefront's price slider.
const (
	PriceFloor   = 0
	PriceCeiling = 1000
)

// ParseSort normalizes a sort key. It accepts both the listing's own names
// and the short spellings used by the HTTP query surface and older agent
// payloads ("price-asc", "rating", ...).
func ParseSort(s string) (Sort, bool) {
	switch s {
	case "featured", "":
		return SortFeatured, s != ""
	case "price-ascending", "price-asc":
		return SortPriceAsc, true
	case "price-descending", "price-desc":
		return SortPriceDesc, true
	case "newest":
		return SortNewest, true
	case "rating-descending", "rating":
		return SortRating, true
	}
	return SortFeatured, false
}

func parseViewMode(s string) (ViewMode, bool) {
	switch s {
	case "grid":
		return ViewGrid, true
	case "compact":
		return ViewCompact, true
	}
	return ViewGrid, false
}

// FilterState is owned exclusively by the currently mounted listing view.
type FilterState struct {
	Categories []string
	PriceRange [2]float64
	Sort       Sort
	Search     string
	ViewMode   ViewMode

	// AssistantApplied marks that the last change came through the filter
	// bridge, so the UI can attribute it ("filters applied by assistant").
	AssistantApplied bool
}

// DefaultState is the state every mount starts from unless URL query
// parameters seed it. Filter state is never persisted across navigation.
func DefaultState() FilterState {
	return FilterState{
		Categories: nil,
		PriceRange: [2]float64{PriceFloor, PriceCeiling},
		Sort:       SortFeatured,
		Search:     "",
		ViewMode:   ViewGrid,
	}
}

// ApplyResult reports what a command changed. SearchChanged means the caller
// must re-fetch with the new search term; everything else is a local
// re-filter.
type ApplyResult struct {
	Applied       bool
	SearchChanged bool
}

// ApplyCommand merges a filter command into the state. Only fields present in
// the command are touched, and each field is validated independently: an
// invalid value drops that field alone while the rest of the command still
// applies. The command originates from a probabilistic agent, so leniency
// here is deliberate.
func (s *FilterState) ApplyCommand(cmd models.FilterCommand) ApplyResult {
	if cmd.Action != models.FilterActionApply {
		return ApplyResult{}
	}

	var res ApplyResult

	if cmd.Categories != nil {
		// Replaces the selection entirely, never a union.
		s.Categories = append([]string(nil), cmd.Categories...)
		res.Applied = true
	}

	if pr := cmd.PriceRange; pr != nil {
		if pr[0] <= pr[1] && pr[0] >= PriceFloor && pr[1] <= PriceCeiling {
			s.PriceRange = *pr
			res.Applied = true
		}
	}

	if cmd.Sort != "" {
		if sort, ok := ParseSort(cmd.Sort); ok {
			s.Sort = sort
			res.Applied = true
		}
	}

	if cmd.Search != nil {
		// An empty string clears the search box; only a nil leaves it alone.
		if s.Search != *cmd.Search {
			res.SearchChanged = true
		}
		s.Search = *cmd.Search
		res.Applied = true
	}

	if cmd.ViewMode != "" {
		if mode, ok := parseViewMode(cmd.ViewMode); ok {
			s.ViewMode = mode
			res.Applied = true
		}
	}

	if res.Applied {
		s.AssistantApplied = true
	}
	return res
}
