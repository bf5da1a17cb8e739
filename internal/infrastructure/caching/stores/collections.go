// Package stores provides concrete cache store implementations
package stores

import (
	"sync"
	"time"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/types"
)

// CollectionStore implements the per-level paginated content buckets plus the
// process-wide category vocabularies.
type CollectionStore struct {
	levelCaches map[levels.LevelID]*types.LevelContentCache
	mu          sync.RWMutex

	categories       map[content.Kind][]string
	categoriesLoaded bool
	categoriesMu     sync.RWMutex
}

// NewCollectionStore creates a new collection cache store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		levelCaches: make(map[levels.LevelID]*types.LevelContentCache),
		categories:  make(map[content.Kind][]string),
	}
}

// InitializeLevel creates cache structures for a level.
func (cs *CollectionStore) InitializeLevel(level levels.LevelID) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.levelCaches[level] == nil {
		cache := &types.LevelContentCache{
			Buckets:     make(map[content.Kind]*types.Bucket),
			LastUpdated: time.Now().UTC(),
		}
		for _, kind := range content.AllKinds() {
			cache.Buckets[kind] = &types.Bucket{}
		}
		cs.levelCaches[level] = cache
	}
}

// getLevelCache safely retrieves a level's content cache, creating it on
// first access.
func (cs *CollectionStore) getLevelCache(level levels.LevelID) *types.LevelContentCache {
	cs.mu.RLock()
	cache, exists := cs.levelCaches[level]
	cs.mu.RUnlock()
	if exists {
		return cache
	}

	cs.InitializeLevel(level)

	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.levelCaches[level]
}

// GetItems returns the cached items for a bucket and whether the bucket is
// loaded. The returned slice is the cached sequence in fetch order.
func (cs *CollectionStore) GetItems(level levels.LevelID, kind content.Kind) ([]content.Item, bool) {
	cache := cs.getLevelCache(level)

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	bucket := cache.Buckets[kind]
	if bucket == nil || !bucket.Loaded {
		return nil, false
	}
	return bucket.Items, true
}

// Snapshot returns a copy of the bucket's current state.
func (cs *CollectionStore) Snapshot(level levels.LevelID, kind content.Kind) types.Bucket {
	cache := cs.getLevelCache(level)

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	bucket := cache.Buckets[kind]
	if bucket == nil {
		return types.Bucket{}
	}
	return *bucket
}

// BeginFetch records that a fetch is being issued for a bucket and returns
// the bucket's current generation. The caller passes the generation back to
// CompleteFetch; if an invalidation happened in between, the completion is
// discarded.
func (cs *CollectionStore) BeginFetch(level levels.LevelID, kind content.Kind) uint64 {
	cache := cs.getLevelCache(level)

	cache.Mu.RLock()
	defer cache.Mu.RUnlock()

	bucket := cache.Buckets[kind]
	if bucket == nil {
		return 0
	}
	return bucket.Generation
}

// CompleteFetch replaces the bucket wholesale with a fetch result. It returns
// false (and stores nothing) when the bucket was invalidated after the fetch
// began. Duplicate in-flight fetches are allowed; the last writer wins.
func (cs *CollectionStore) CompleteFetch(level levels.LevelID, kind content.Kind, gen uint64, items []content.Item, requestedLimit int) bool {
	cache := cs.getLevelCache(level)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	bucket := cache.Buckets[kind]
	if bucket == nil || bucket.Generation != gen {
		return false
	}

	bucket.Items = items
	bucket.Loaded = true
	bucket.RequestedLimit = requestedLimit
	bucket.HasMore = len(items) >= requestedLimit
	bucket.FetchedAt = time.Now().UTC()
	cache.LastUpdated = time.Now().UTC()
	return true
}

// Invalidate clears a bucket immediately and bumps its generation so any
// in-flight fetch result is discarded on arrival.
func (cs *CollectionStore) Invalidate(level levels.LevelID, kind content.Kind) {
	cache := cs.getLevelCache(level)

	cache.Mu.Lock()
	defer cache.Mu.Unlock()

	bucket := cache.Buckets[kind]
	if bucket == nil {
		return
	}

	bucket.Items = nil
	bucket.Loaded = false
	bucket.RequestedLimit = 0
	bucket.HasMore = false
	bucket.Generation++
	cache.LastUpdated = time.Now().UTC()
}

// InvalidateLevel clears every bucket of a level.
func (cs *CollectionStore) InvalidateLevel(level levels.LevelID) {
	for _, kind := range content.AllKinds() {
		cs.Invalidate(level, kind)
	}
}

// GetCategories returns the cached vocabulary for a kind. The synthetic
// leading "Semua" entry is prepended by the service, never cached here.
func (cs *CollectionStore) GetCategories(kind content.Kind) ([]string, bool) {
	cs.categoriesMu.RLock()
	defer cs.categoriesMu.RUnlock()

	if !cs.categoriesLoaded {
		return nil, false
	}
	vocab, ok := cs.categories[kind]
	return vocab, ok
}

// SetCategories stores the full category vocabulary set.
func (cs *CollectionStore) SetCategories(vocab map[content.Kind][]string) {
	cs.categoriesMu.Lock()
	defer cs.categoriesMu.Unlock()

	cs.categories = vocab
	cs.categoriesLoaded = true
}
