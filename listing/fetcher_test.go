package listing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JK-asthetic/SmartStoreFront/bridge"
	"github.com/JK-asthetic/SmartStoreFront/models"
)

func TestAPIFetcherFetchProductsUnwrapsEnvelope(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products", r.URL.Path)
		gotQuery = r.URL.Query()

		json.NewEncoder(w).Encode(map[string]any{
			"message": "Products fetched successfully",
			"data": []models.Product{
				{ID: 1, Name: "Ultra Wireless Earbuds", Slug: "ultra-wireless-earbuds", Price: 129.99},
				{ID: 2, Name: "Pro Laptop 14", Slug: "pro-laptop-14", Price: 999.00},
			},
		})
	}))
	defer server.Close()

	fetcher := NewAPIFetcher(server.URL)
	products, err := fetcher.FetchProducts(context.Background(), Query{Search: "pro", Limit: 50})

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Pro Laptop 14", products[1].Name)
	assert.Equal(t, []string{"pro"}, gotQuery["search"])
	assert.Equal(t, []string{"50"}, gotQuery["limit"])
}

func TestAPIFetcherOmitsEmptyQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode(map[string]any{"data": []models.Product{}})
	}))
	defer server.Close()

	fetcher := NewAPIFetcher(server.URL)
	products, err := fetcher.FetchProducts(context.Background(), Query{})

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestAPIFetcherFetchCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/categories", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"data": []models.Category{
				{ID: 1, Name: "Electronics", Slug: "electronics"},
			},
		})
	}))
	defer server.Close()

	fetcher := NewAPIFetcher(server.URL)
	categories, err := fetcher.FetchCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "electronics", categories[0].Slug)
}

func TestAPIFetcherSurfacesServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewAPIFetcher(server.URL)
	_, err := fetcher.FetchProducts(context.Background(), Query{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestAPIFetcherFeedsTheView(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products":
			json.NewEncoder(w).Encode(map[string]any{
				"data": []models.Product{
					{ID: 1, Name: "Yoga Mat Premium", Slug: "yoga-mat-premium", Price: 39.99},
				},
			})
		case "/categories":
			json.NewEncoder(w).Encode(map[string]any{
				"data": []models.Category{
					{ID: 3, Name: "Fitness", Slug: "fitness"},
				},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	view := NewView(bridge.New(), NewAPIFetcher(server.URL))
	view.Mount(context.Background(), nil)
	defer view.Unmount()

	require.NoError(t, view.Err())
	products := view.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Yoga Mat Premium", products[0].Name)
}
