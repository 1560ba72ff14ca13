package listing

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JK-asthetic/SmartStoreFront/bridge"
	"github.com/JK-asthetic/SmartStoreFront/models"
)

type fakeFetcher struct {
	mu         sync.Mutex
	products   []models.Product
	categories []models.Category
	err        error
	queries    []Query
}

func (f *fakeFetcher) FetchProducts(_ context.Context, q Query) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeFetcher) FetchCategories(context.Context) ([]models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.categories, nil
}

func (f *fakeFetcher) lastQuery(t *testing.T) Query {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.queries)
	return f.queries[len(f.queries)-1]
}

func newTestView(f *fakeFetcher) (*View, *bridge.FilterBridge) {
	b := bridge.New()
	return NewView(b, f), b
}

func TestMountSeedsStateFromURLParams(t *testing.T) {
	f := &fakeFetcher{}
	v, _ := newTestView(f)

	v.Mount(context.Background(), url.Values{
		"category": {"books"},
		"search":   {"poetry"},
		"filter":   {"price-asc"},
	})

	state := v.State()
	assert.Equal(t, []string{"books"}, state.Categories)
	assert.Equal(t, "poetry", state.Search)
	assert.Equal(t, SortPriceAsc, state.Sort)
	assert.Equal(t, "poetry", f.lastQuery(t).Search)
}

func TestRemountStartsFromDefaults(t *testing.T) {
	f := &fakeFetcher{}
	v, _ := newTestView(f)

	v.Mount(context.Background(), url.Values{"category": {"books"}})
	v.Unmount()
	v.Mount(context.Background(), url.Values{})

	// No persistence across navigation: each mount starts clean.
	state := v.State()
	assert.Empty(t, state.Categories)
	assert.Equal(t, DefaultState().PriceRange, state.PriceRange)
	assert.Equal(t, SortFeatured, state.Sort)
}

func TestDispatchedCommandMutatesMountedView(t *testing.T) {
	f := &fakeFetcher{
		categories: []models.Category{
			{ID: 1, Name: "Men", Slug: "men"},
			{ID: 2, Name: "Women", Slug: "women"},
		},
		products: []models.Product{
			{Name: "women-10", Price: 10, CategoryID: intPtr(2)},
			{Name: "men-5", Price: 5, CategoryID: intPtr(1)},
			{Name: "men-20", Price: 20, CategoryID: intPtr(1)},
		},
	}
	v, b := newTestView(f)
	v.Mount(context.Background(), url.Values{})

	b.Dispatch(models.FilterCommand{
		Action:     models.FilterActionApply,
		Categories: []string{"men"},
		Sort:       "price-ascending",
	})

	got := v.Products()
	require.Len(t, got, 2)
	assert.Equal(t, "men-5", got[0].Name)
	assert.Equal(t, "men-20", got[1].Name)
	assert.True(t, v.State().AssistantApplied)
}

func TestDispatchAfterUnmountNeverReachesView(t *testing.T) {
	f := &fakeFetcher{}
	v, b := newTestView(f)

	v.Mount(context.Background(), url.Values{})
	v.Unmount()

	// Disable the buffer path for this bridge by letting the command expire
	// against a dead view: the old closure must not run.
	b.Dispatch(models.FilterCommand{
		Action:     models.FilterActionApply,
		Categories: []string{"books"},
	})

	assert.Empty(t, v.State().Categories)
}

func TestBufferedCommandLandsOnNextMount(t *testing.T) {
	f := &fakeFetcher{}
	v, b := newTestView(f)

	// Dispatch before the view exists: the navigate-then-dispatch handoff.
	b.Dispatch(models.FilterCommand{
		Action: models.FilterActionApply,
		Sort:   "rating-descending",
	})

	v.Mount(context.Background(), url.Values{})

	assert.Equal(t, SortRating, v.State().Sort)
	assert.True(t, v.State().AssistantApplied)
}

func TestSearchCommandTriggersRefetch(t *testing.T) {
	f := &fakeFetcher{}
	v, b := newTestView(f)
	v.Mount(context.Background(), url.Values{})

	initialFetches := len(f.queries)
	b.Dispatch(models.FilterCommand{
		Action: models.FilterActionApply,
		Search: strPtr("wireless mouse"),
	})

	assert.Equal(t, initialFetches+1, len(f.queries))
	assert.Equal(t, "wireless mouse", f.lastQuery(t).Search)
}

func TestSortOnlyCommandDoesNotRefetch(t *testing.T) {
	f := &fakeFetcher{}
	v, b := newTestView(f)
	v.Mount(context.Background(), url.Values{})

	initialFetches := len(f.queries)
	b.Dispatch(models.FilterCommand{
		Action: models.FilterActionApply,
		Sort:   "newest",
	})

	// Category/price/sort are local re-filters, never fetch parameters.
	assert.Equal(t, initialFetches, len(f.queries))
}

func TestFetchFailureKeepsFilterState(t *testing.T) {
	f := &fakeFetcher{}
	v, _ := newTestView(f)
	v.Mount(context.Background(), url.Values{"category": {"books"}})

	f.mu.Lock()
	f.err = errors.New("store unreachable")
	f.mu.Unlock()

	v.SetSearch("notebooks")

	assert.Error(t, v.Err())
	state := v.State()
	assert.Equal(t, []string{"books"}, state.Categories)
	assert.Equal(t, "notebooks", state.Search)

	// Retry clears the error once the store is back.
	f.mu.Lock()
	f.err = nil
	f.mu.Unlock()
	v.Retry()
	assert.NoError(t, v.Err())
}

func TestUserInteractionClearsAssistantProvenance(t *testing.T) {
	f := &fakeFetcher{}
	v, b := newTestView(f)
	v.Mount(context.Background(), url.Values{})

	b.Dispatch(models.FilterCommand{Action: models.FilterActionApply, Sort: "newest"})
	require.True(t, v.State().AssistantApplied)

	v.SetSort(SortPriceDesc)
	assert.False(t, v.State().AssistantApplied)
}
