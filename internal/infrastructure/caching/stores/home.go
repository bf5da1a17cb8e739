package stores

import (
	"sync"
	"time"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/types"
)

// HomeStore caches the home-page payload per level under its own loaded
// flag, independent of the paginated collection buckets.
type HomeStore struct {
	buckets map[levels.LevelID]*types.HomeBucket
	mu      sync.RWMutex
}

// NewHomeStore creates a new home cache store.
func NewHomeStore() *HomeStore {
	return &HomeStore{
		buckets: make(map[levels.LevelID]*types.HomeBucket),
	}
}

func (hs *HomeStore) getBucket(level levels.LevelID) *types.HomeBucket {
	hs.mu.Lock()
	defer hs.mu.Unlock()

	bucket, exists := hs.buckets[level]
	if !exists {
		bucket = &types.HomeBucket{}
		hs.buckets[level] = bucket
	}
	return bucket
}

// GetHome returns the cached home payload for a level, if loaded.
func (hs *HomeStore) GetHome(level levels.LevelID) (*types.HomeData, bool) {
	hs.mu.RLock()
	defer hs.mu.RUnlock()

	bucket, exists := hs.buckets[level]
	if !exists || !bucket.Loaded {
		return nil, false
	}
	return bucket.Data, true
}

// BeginHomeFetch returns the current generation for a level's home bucket.
func (hs *HomeStore) BeginHomeFetch(level levels.LevelID) uint64 {
	bucket := hs.getBucket(level)

	hs.mu.RLock()
	defer hs.mu.RUnlock()
	return bucket.Generation
}

// CompleteHomeFetch stores a fetched home payload unless the bucket was
// invalidated after the fetch began.
func (hs *HomeStore) CompleteHomeFetch(level levels.LevelID, gen uint64, data *types.HomeData) bool {
	bucket := hs.getBucket(level)

	hs.mu.Lock()
	defer hs.mu.Unlock()

	if bucket.Generation != gen {
		return false
	}

	bucket.Data = data
	bucket.Loaded = true
	bucket.FetchedAt = time.Now().UTC()
	return true
}

// InvalidateHome clears a level's home bucket.
func (hs *HomeStore) InvalidateHome(level levels.LevelID) {
	bucket := hs.getBucket(level)

	hs.mu.Lock()
	defer hs.mu.Unlock()

	bucket.Data = nil
	bucket.Loaded = false
	bucket.Generation++
}
