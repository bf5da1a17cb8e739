package stores

import (
	"sync"
	"time"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/types"
)

// AdminStore caches admin list views per content kind. The staleness-window
// policy belongs to the admin service; this store only keeps items and their
// fetch timestamp. FetchedAt is caller-supplied so buckets hydrated from a
// persisted snapshot keep the snapshot's original timestamp.
type AdminStore struct {
	buckets map[content.Kind]*types.AdminBucket
	mu      sync.RWMutex
}

// NewAdminStore creates a new admin cache store.
func NewAdminStore() *AdminStore {
	store := &AdminStore{
		buckets: make(map[content.Kind]*types.AdminBucket),
	}
	for _, kind := range content.AllKinds() {
		store.buckets[kind] = &types.AdminBucket{}
	}
	return store
}

// GetAdminList returns the cached admin list, its fetch time, and whether the
// bucket is loaded.
func (as *AdminStore) GetAdminList(kind content.Kind) ([]content.Item, time.Time, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	bucket := as.buckets[kind]
	if bucket == nil || !bucket.Loaded {
		return nil, time.Time{}, false
	}
	return bucket.Items, bucket.FetchedAt, true
}

// BeginAdminFetch returns the current generation for a kind's admin bucket.
func (as *AdminStore) BeginAdminFetch(kind content.Kind) uint64 {
	as.mu.RLock()
	defer as.mu.RUnlock()

	bucket := as.buckets[kind]
	if bucket == nil {
		return 0
	}
	return bucket.Generation
}

// CompleteAdminFetch replaces the admin bucket wholesale unless it was
// invalidated after the fetch began.
func (as *AdminStore) CompleteAdminFetch(kind content.Kind, gen uint64, items []content.Item, fetchedAt time.Time) bool {
	as.mu.Lock()
	defer as.mu.Unlock()

	bucket := as.buckets[kind]
	if bucket == nil || bucket.Generation != gen {
		return false
	}

	bucket.Items = items
	bucket.Loaded = true
	bucket.FetchedAt = fetchedAt
	return true
}

// InvalidateAdmin clears the admin bucket for a kind immediately.
func (as *AdminStore) InvalidateAdmin(kind content.Kind) {
	as.mu.Lock()
	defer as.mu.Unlock()

	bucket := as.buckets[kind]
	if bucket == nil {
		return
	}

	bucket.Items = nil
	bucket.Loaded = false
	bucket.FetchedAt = time.Time{}
	bucket.Generation++
}
