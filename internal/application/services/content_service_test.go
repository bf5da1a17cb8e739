package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/manager"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/jenjang"
)

func newContentService(t *testing.T, fetcher *fakeFetcher) (*ContentService, *manager.Manager) {
	t.Helper()
	cache := manager.NewManager()
	store := jenjang.NewStore(nil, testLogger(t))
	home := NewHomeService(cache, fetcher, store, nil, testLogger(t))
	return NewContentService(cache, fetcher, home, testLogger(t)), cache
}

func TestGetItemsFetchesOnColdCache(t *testing.T) {
	fetcher := &fakeFetcher{
		itemsFn: func(kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error) {
			return makeItems(kind, level, limit), nil
		},
	}
	svc, _ := newContentService(t, fetcher)

	result, err := svc.GetItems(context.Background(), levels.LevelSMA, content.KindNews, 6)
	require.NoError(t, err)
	assert.Len(t, result.Items, 6)
	assert.True(t, result.HasMore)
	assert.Equal(t, 1, fetcher.listCalls())
}

func TestGetItemsServesFromCacheWithoutRefetch(t *testing.T) {
	fetcher := &fakeFetcher{
		itemsFn: func(kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error) {
			return makeItems(kind, level, limit), nil
		},
	}
	svc, _ := newContentService(t, fetcher)

	_, err := svc.GetItems(context.Background(), levels.LevelSMA, content.KindNews, 6)
	require.NoError(t, err)

	// A repeat read for the same or a smaller window must not hit the network.
	result, err := svc.GetItems(context.Background(), levels.LevelSMA, content.KindNews, 6)
	require.NoError(t, err)
	assert.Len(t, result.Items, 6)

	result, err = svc.GetItems(context.Background(), levels.LevelSMA, content.KindNews, 3)
	require.NoError(t, err)
	assert.Len(t, result.Items, 3)
	assert.True(t, result.HasMore)

	assert.Equal(t, 1, fetcher.listCalls())
}

func TestGetItemsIsolatesLevels(t *testing.T) {
	fetcher := &fakeFetcher{
		itemsFn: func(kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error) {
			return makeItems(kind, level, limit), nil
		},
	}
	svc, _ := newContentService(t, fetcher)

	_, err := svc.GetItems(context.Background(), levels.LevelSMA, content.KindNews, 6)
	require.NoError(t, err)

	// A different level is a separate bucket and must fetch on its own.
	result, err := svc.GetItems(context.Background(), levels.LevelSD, content.KindNews, 6)
	require.NoError(t, err)
	assert.Equal(t, levels.LevelSD, result.Items[0].Level)
	assert.Equal(t, 2, fetcher.listCalls())
}

func TestLoadMoreGrowsByPageIncrement(t *testing.T) {
	requested := make([]int, 0, 2)
	fetcher := &fakeFetcher{
		itemsFn: func(kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error) {
			requested = append(requested, limit)
			return makeItems(kind, level, limit), nil
		},
	}
	svc, _ := newContentService(t, fetcher)

	first, err := svc.LoadMore(context.Background(), levels.Universal, content.KindProjects)
	require.NoError(t, err)
	assert.Len(t, first.Items, 6)

	second, err := svc.LoadMore(context.Background(), levels.Universal, content.KindProjects)
	require.NoError(t, err)
	assert.Len(t, second.Items, 12)

	assert.Equal(t, []int{6, 12}, requested)
}

func TestHasMoreFalseWhenFetchUnderfilled(t *testing.T) {
	fetcher := &fakeFetcher{
		itemsFn: func(kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error) {
			// The collection only holds 4 items.
			return makeItems(kind, level, 4), nil
		},
	}
	svc, _ := newContentService(t, fetcher)

	assert.True(t, svc.HasMore(levels.Universal, content.KindNews))

	result, err := svc.GetItems(context.Background(), levels.Universal, content.KindNews, 6)
	require.NoError(t, err)
	assert.Len(t, result.Items, 4)
	assert.False(t, result.HasMore)
	assert.False(t, svc.HasMore(levels.Universal, content.KindNews))
}

func TestGetItemsErrorLeavesBucketUntouched(t *testing.T) {
	failing := false
	fetcher := &fakeFetcher{
		itemsFn: func(kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error) {
			if failing {
				return nil, &repositories.FetchError{Kind: kind, Op: "list", Err: context.DeadlineExceeded}
			}
			return makeItems(kind, level, limit), nil
		},
	}
	svc, cache := newContentService(t, fetcher)

	_, err := svc.GetItems(context.Background(), levels.LevelTK, content.KindNews, 6)
	require.NoError(t, err)

	failing = true
	_, err = svc.GetItems(context.Background(), levels.LevelTK, content.KindNews, 12)
	require.Error(t, err)

	var fetchErr *repositories.FetchError
	require.ErrorAs(t, err, &fetchErr)

	cached, ok := cache.GetItems(levels.LevelTK, content.KindNews)
	require.True(t, ok)
	assert.Len(t, cached, 6)
}

func TestInvalidationSupersedesInFlightFetch(t *testing.T) {
	fetcher := &fakeFetcher{
		itemsFn: func(kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error) {
			return makeItems(kind, level, limit), nil
		},
	}
	_, cache := newContentService(t, fetcher)

	gen := cache.BeginFetch(levels.LevelSMP, content.KindJournals)
	cache.Invalidate(levels.LevelSMP, content.KindJournals)

	stored := cache.CompleteFetch(levels.LevelSMP, content.KindJournals, gen,
		makeItems(content.KindJournals, levels.LevelSMP, 6), 6)
	assert.False(t, stored)

	_, ok := cache.GetItems(levels.LevelSMP, content.KindJournals)
	assert.False(t, ok)
}

func TestBestJournalsWarmsHomeBucketOnce(t *testing.T) {
	fetcher := &fakeFetcher{
		itemsFn: func(kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error) {
			return makeItems(kind, level, limit), nil
		},
		bestFn: func(level levels.LevelID) ([]content.Item, error) {
			// The upstream list is longer than the curated cap.
			return makeItems(content.KindJournals, level, 5), nil
		},
	}
	svc, cache := newContentService(t, fetcher)

	items, err := svc.BestJournals(context.Background(), levels.LevelSMP)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	// The first read warms the home bucket; a repeat read is a cache hit.
	_, ok := cache.GetHome(levels.LevelSMP)
	require.True(t, ok)

	again, err := svc.BestJournals(context.Background(), levels.LevelSMP)
	require.NoError(t, err)
	assert.Len(t, again, 3)
	assert.Equal(t, 1, fetcher.bestJournalCalls())
}

func TestCategoriesPrependsAllEntry(t *testing.T) {
	fetcher := &fakeFetcher{
		catsFn: func() (map[content.Kind][]string, error) {
			return map[content.Kind][]string{
				content.KindNews: {"Prestasi", "Kegiatan"},
			}, nil
		},
	}
	svc, _ := newContentService(t, fetcher)

	categories, err := svc.Categories(context.Background(), content.KindNews)
	require.NoError(t, err)
	assert.Equal(t, []string{"Semua", "Prestasi", "Kegiatan"}, categories)

	// Facilities carry no vocabulary; only the synthetic entry remains.
	categories, err = svc.Categories(context.Background(), content.KindFacilities)
	require.NoError(t, err)
	assert.Equal(t, []string{"Semua"}, categories)
}
