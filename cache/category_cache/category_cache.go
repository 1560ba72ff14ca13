package category_cache

import (
	"sync"
	"time"

	"github.com/JK-asthetic/SmartStoreFront/models"
)

const TTL = 5 * time.Minute

// Categories change rarely, so the list every storefront page needs is kept
// in process memory instead of hitting Postgres on each request.

type entry struct {
	data      []models.Category
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache *entry
)

func Get() ([]models.Category, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cache != nil && time.Since(cache.fetchedAt) < TTL {
		return cache.data, true
	}
	return nil, false
}

func Set(data []models.Category) {
	mu.Lock()
	defer mu.Unlock()
	cache = &entry{data: data, fetchedAt: time.Now()}
}

// Invalidate drops the cached list. Call on any category create/update/delete.
func Invalidate() {
	mu.Lock()
	cache = nil
	mu.Unlock()
}
