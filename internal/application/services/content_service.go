// Package services contains the application layer: orchestration between the
// per-level caches, the remote content API, and the HTTP handlers. Services
// own the fetch-or-serve decisions; handlers only translate HTTP.
package services

import (
	"context"
	"time"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/interfaces"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/pkg/config"
)

// ContentService serves the paginated collection lists for one level at a
// time. Reads hit the cache first; a miss (or an underfilled bucket) triggers
// a fetch that replaces the bucket wholesale. Fetch failures leave whatever
// was cached untouched.
type ContentService struct {
	cache   interfaces.Cache
	fetcher repositories.ContentFetcher
	home    *HomeService
	logger  *logging.ChanneledLogger
}

// ListResult is one page of a collection plus the pagination signal.
type ListResult struct {
	Items   []content.Item `json:"items"`
	HasMore bool           `json:"hasMore"`
}

func NewContentService(cache interfaces.Cache, fetcher repositories.ContentFetcher, home *HomeService, logger *logging.ChanneledLogger) *ContentService {
	return &ContentService{cache: cache, fetcher: fetcher, home: home, logger: logger}
}

// GetItems returns at least limit items for the kind and level, fetching only
// when the cached bucket cannot cover the request. A successful fetch replaces
// the bucket wholesale; an invalidation issued after the fetch began wins over
// its result, which is still returned to this caller.
func (s *ContentService) GetItems(ctx context.Context, level levels.LevelID, kind content.Kind, limit int) (*ListResult, error) {
	start := time.Now()
	snap := s.cache.Snapshot(level, kind)
	if snap.Loaded && len(snap.Items) >= limit {
		s.logger.LogCacheOperation("list", string(kind), true, time.Since(start), string(level))
		return &ListResult{
			Items:   snap.Items[:limit],
			HasMore: snap.HasMore || len(snap.Items) > limit,
		}, nil
	}

	s.logger.LogCacheOperation("list", string(kind), false, time.Since(start), string(level))
	gen := s.cache.BeginFetch(level, kind)

	items, err := s.fetcher.FetchItems(ctx, kind, limit, level)
	if err != nil {
		s.logger.LogError(logging.ChannelContent, "list", err, string(level))
		return nil, err
	}

	stored := s.cache.CompleteFetch(level, kind, gen, items, limit)
	if !stored {
		s.logger.Cache().Debug("Fetch result superseded by invalidation",
			"kind", string(kind), "jenjang", string(level))
	}

	return &ListResult{Items: items, HasMore: len(items) >= limit}, nil
}

// LoadMore grows the bucket by one page increment beyond what was last
// requested and returns the enlarged list.
func (s *ContentService) LoadMore(ctx context.Context, level levels.LevelID, kind content.Kind) (*ListResult, error) {
	snap := s.cache.Snapshot(level, kind)
	limit := config.PageIncrement
	if snap.Loaded {
		limit = snap.RequestedLimit + config.PageIncrement
	}
	return s.GetItems(ctx, level, kind, limit)
}

// HasMore reports whether another page may exist. Before any fetch the answer
// is optimistic: only a fetch that came back underfilled can say no.
func (s *ContentService) HasMore(level levels.LevelID, kind content.Kind) bool {
	snap := s.cache.Snapshot(level, kind)
	if !snap.Loaded {
		return true
	}
	return snap.HasMore
}

// BestJournals returns the curated best-journals list for a level. The list
// lives in the home bucket, so a cold bucket is warmed through the full home
// load and later reads hit the cache.
func (s *ContentService) BestJournals(ctx context.Context, level levels.LevelID) ([]content.Item, error) {
	if home, ok := s.cache.GetHome(level); ok {
		return home.BestJournals, nil
	}

	payload, err := s.home.GetHome(ctx, level)
	if err != nil {
		s.logger.LogError(logging.ChannelContent, "best-journals", err, string(level))
		return nil, err
	}
	return payload.BestJournals, nil
}

// Categories returns the category vocabulary for a kind with the synthetic
// all-items entry prepended. The vocabulary is fetched once per process and
// shared across levels. Uncategorized kinds get only the synthetic entry.
func (s *ContentService) Categories(ctx context.Context, kind content.Kind) ([]string, error) {
	if !kind.HasCategories() {
		return []string{content.CategoryAll}, nil
	}

	if vocab, ok := s.cache.GetCategories(kind); ok {
		return withAllCategory(vocab), nil
	}

	fetched, err := s.fetcher.FetchCategories(ctx)
	if err != nil {
		s.logger.LogError(logging.ChannelContent, "categories", err, "")
		return nil, err
	}
	s.cache.SetCategories(fetched)

	return withAllCategory(fetched[kind]), nil
}

func withAllCategory(vocab []string) []string {
	out := make([]string, 0, len(vocab)+1)
	out = append(out, content.CategoryAll)
	return append(out, vocab...)
}
