package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

// APIFetcher loads products and categories from the storefront REST API.
type APIFetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewAPIFetcher(baseURL string) *APIFetcher {
	return &APIFetcher{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (f *APIFetcher) FetchProducts(ctx context.Context, q Query) ([]models.Product, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	var products []models.Product
	if err := f.getJSON(ctx, "/products", params, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (f *APIFetcher) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := f.getJSON(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (f *APIFetcher) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := f.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("GET %s: decode envelope: %w", path, err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("GET %s: decode payload: %w", path, err)
	}
	return nil
}
