// Package interfaces defines cache operation contracts for per-level content
// management.
package interfaces

import (
	"time"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/types"
)

// CollectionCache defines operations for the per-level paginated buckets.
// Writes go through BeginFetch/CompleteFetch so an invalidation issued after
// a fetch began always wins over that fetch's late result.
type CollectionCache interface {
	GetItems(level levels.LevelID, kind content.Kind) ([]content.Item, bool)
	Snapshot(level levels.LevelID, kind content.Kind) types.Bucket
	BeginFetch(level levels.LevelID, kind content.Kind) uint64
	CompleteFetch(level levels.LevelID, kind content.Kind, gen uint64, items []content.Item, requestedLimit int) bool
	Invalidate(level levels.LevelID, kind content.Kind)
	InvalidateLevel(level levels.LevelID)

	GetCategories(kind content.Kind) ([]string, bool)
	SetCategories(vocab map[content.Kind][]string)
}

// HomeCache defines operations for the per-level home bucket.
type HomeCache interface {
	GetHome(level levels.LevelID) (*types.HomeData, bool)
	BeginHomeFetch(level levels.LevelID) uint64
	CompleteHomeFetch(level levels.LevelID, gen uint64, data *types.HomeData) bool
	InvalidateHome(level levels.LevelID)
}

// AdminCache defines operations for the admin list buckets (keyed per kind,
// level-unscoped). Staleness-window policy lives with the caller; the cache
// only records timestamps.
type AdminCache interface {
	GetAdminList(kind content.Kind) ([]content.Item, time.Time, bool)
	BeginAdminFetch(kind content.Kind) uint64
	CompleteAdminFetch(kind content.Kind, gen uint64, items []content.Item, fetchedAt time.Time) bool
	InvalidateAdmin(kind content.Kind)
}

// Cache is the full cache facade assembled by the manager.
type Cache interface {
	CollectionCache
	HomeCache
	AdminCache
}
