package listing

import (
	"context"
	"net/url"
	"sync"

	"github.com/JK-asthetic/SmartStoreFront/bridge"
	"github.com/JK-asthetic/SmartStoreFront/models"
)

// Query carries the server-side fetch parameters. Search is matched by the
// backend against name and description; everything else the view filters
// locally.
type Query struct {
	Search string
	Limit  int
}

// Fetcher loads the product collection and category list for the view.
type Fetcher interface {
	FetchProducts(ctx context.Context, q Query) ([]models.Product, error)
	FetchCategories(ctx context.Context) ([]models.Category, error)
}

// View is the routed products page: it owns the filter state for its own
// lifetime, registers with the filter bridge on mount and unregisters on
// unmount. A fresh mount starts from defaults unless URL query parameters
// seed it.
type View struct {
	bridge  *bridge.FilterBridge
	fetcher Fetcher

	mu         sync.Mutex
	ctx        context.Context
	state      FilterState
	products   []models.Product
	categories []models.Category
	fetchErr   error
	mounted    bool
}

func NewView(b *bridge.FilterBridge, f Fetcher) *View {
	return &View{
		bridge:  b,
		fetcher: f,
		state:   DefaultState(),
	}
}

// Mount seeds the filter state from the page URL's query parameters
// (category, search, filter), fetches categories and products, and registers
// the view with the bridge. Registration happens after the initial state is
// seeded so a buffered assistant command lands on top of the URL seed, never
// under it.
func (v *View) Mount(ctx context.Context, params url.Values) {
	v.mu.Lock()
	v.ctx = ctx
	v.mounted = true
	v.state = DefaultState()

	if category := params.Get("category"); category != "" {
		v.state.Categories = []string{category}
	}
	if search := params.Get("search"); search != "" {
		v.state.Search = search
	}
	if filter := params.Get("filter"); filter != "" {
		if sort, ok := ParseSort(filter); ok {
			v.state.Sort = sort
		}
	}
	search := v.state.Search
	v.mu.Unlock()

	v.loadCategories(ctx)
	v.fetch(ctx, search)

	v.bridge.Register(v.applyFromBridge)
}

// Unmount unregisters from the bridge and discards the view's state. A
// dispatch arriving after this point never reaches the dead view's closure.
func (v *View) Unmount() {
	v.bridge.Unregister()

	v.mu.Lock()
	v.mounted = false
	v.state = DefaultState()
	v.products = nil
	v.fetchErr = nil
	v.ctx = nil
	v.mu.Unlock()
}

// State returns a snapshot of the current filter state.
func (v *View) State() FilterState {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.state
	s.Categories = append([]string(nil), v.state.Categories...)
	return s
}

// Products returns the displayed sequence: the fetched collection with the
// price, category and sort pipeline applied.
func (v *View) Products() []models.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Visible(v.products, v.categories, v.state)
}

// Err reports the last fetch failure, if any. A failed fetch keeps the
// existing filter state; the UI renders a retry affordance from this.
func (v *View) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fetchErr
}

// Retry re-runs the last fetch after a failure.
func (v *View) Retry() {
	v.mu.Lock()
	ctx, search := v.ctx, v.state.Search
	v.mu.Unlock()
	if ctx == nil {
		return
	}
	v.loadCategories(ctx)
	v.fetch(ctx, search)
}

// ── Direct user interaction ──────────────────────────────────────────────────
// These clear the assistant provenance flag: the last change is now the
// user's own.

func (v *View) SetCategories(slugs []string) {
	v.mu.Lock()
	v.state.Categories = append([]string(nil), slugs...)
	v.state.AssistantApplied = false
	v.mu.Unlock()
}

func (v *View) SetPriceRange(min, max float64) {
	v.mu.Lock()
	v.state.PriceRange = [2]float64{min, max}
	v.state.AssistantApplied = false
	v.mu.Unlock()
}

func (v *View) SetSort(sort Sort) {
	v.mu.Lock()
	v.state.Sort = sort
	v.state.AssistantApplied = false
	v.mu.Unlock()
}

func (v *View) SetViewMode(mode ViewMode) {
	v.mu.Lock()
	v.state.ViewMode = mode
	v.state.AssistantApplied = false
	v.mu.Unlock()
}

// SetSearch updates the search term and re-fetches: search is a server-side
// fetch parameter, not a local filter step.
func (v *View) SetSearch(search string) {
	v.mu.Lock()
	changed := v.state.Search != search
	v.state.Search = search
	v.state.AssistantApplied = false
	ctx := v.ctx
	v.mu.Unlock()

	if changed && ctx != nil {
		v.fetch(ctx, search)
	}
}

// ResetFilters restores defaults while keeping the fetched collection.
func (v *View) ResetFilters() {
	v.mu.Lock()
	hadSearch := v.state.Search != ""
	v.state = DefaultState()
	ctx := v.ctx
	v.mu.Unlock()

	if hadSearch && ctx != nil {
		v.fetch(ctx, "")
	}
}

// ── Bridge side ──────────────────────────────────────────────────────────────

func (v *View) applyFromBridge(cmd models.FilterCommand) {
	v.mu.Lock()
	if !v.mounted {
		v.mu.Unlock()
		return
	}
	res := v.state.ApplyCommand(cmd)
	ctx, search := v.ctx, v.state.Search
	v.mu.Unlock()

	if res.SearchChanged && ctx != nil {
		v.fetch(ctx, search)
	}
}

// ── Fetching ─────────────────────────────────────────────────────────────────

func (v *View) loadCategories(ctx context.Context) {
	cats, err := v.fetcher.FetchCategories(ctx)
	v.mu.Lock()
	if err == nil {
		v.categories = cats
	}
	// A category fetch failure is tolerated: the join simply cannot resolve
	// yet, and an active selection hides products until a retry succeeds.
	v.mu.Unlock()
}

func (v *View) fetch(ctx context.Context, search string) {
	products, err := v.fetcher.FetchProducts(ctx, Query{Search: search})
	v.mu.Lock()
	if err != nil {
		// Keep the previous collection and the filter state untouched.
		v.fetchErr = err
	} else {
		v.products = products
		v.fetchErr = nil
	}
	v.mu.Unlock()
}
