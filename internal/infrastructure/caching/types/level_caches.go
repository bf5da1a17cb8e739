// Package types defines cache data structures for per-level content caching.
package types

import (
	"sync"
	"time"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
)

// Bucket is the cached collection state for one content kind within one
// level. Items keep fetch order; a bucket is either replaced wholesale by a
// successful fetch or left untouched, never partially patched.
type Bucket struct {
	Items          []content.Item
	Loaded         bool
	RequestedLimit int
	HasMore        bool
	FetchedAt      time.Time

	// Generation increments on every invalidation. A fetch completion whose
	// captured generation no longer matches is discarded, so stale in-flight
	// results cannot resurrect cleared data.
	Generation uint64
}

// HomeData is the home-page payload cached once per level under its own
// loaded flag, independent of the paginated buckets: it is fetched with
// different parameters and must not be conflated with them.
type HomeData struct {
	LatestNews     []content.Item `json:"latestNews"`
	LatestProjects []content.Item `json:"latestProjects"`
	BestJournals   []content.Item `json:"bestJournals"`
	Facilities     []content.Item `json:"facilities"`
}

// HomeBucket wraps HomeData with cache metadata.
type HomeBucket struct {
	Data       *HomeData
	Loaded     bool
	FetchedAt  time.Time
	Generation uint64
}

// LevelContentCache holds all cached content for a single level (jenjang).
type LevelContentCache struct {
	Buckets map[content.Kind]*Bucket
	Home    HomeBucket

	LastUpdated time.Time
	Mu          sync.RWMutex // Exported for access
}

// AdminBucket is the cached admin list for one content kind. Admin lists are
// unscoped by level and carry a wall-clock staleness window enforced by the
// admin service.
type AdminBucket struct {
	Items      []content.Item
	Loaded     bool
	FetchedAt  time.Time
	Generation uint64
}
