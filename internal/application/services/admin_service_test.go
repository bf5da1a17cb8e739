package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/manager"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/persistence/snapshot"
)

func newAdminFixture(t *testing.T, fetcher *fakeFetcher, ttl time.Duration) (*AdminService, *manager.Manager, *snapshot.Store) {
	t.Helper()

	cache := manager.NewManager()
	snapshots, err := snapshot.Open(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { snapshots.Close() })

	svc := NewAdminService(cache, fetcher, fetcher, snapshots, nil, ttl, testLogger(t))
	return svc, cache, snapshots
}

func TestAdminListServesCachedWithinWindow(t *testing.T) {
	fetcher := &fakeFetcher{
		allFn: func(kind content.Kind) ([]content.Item, error) {
			return makeItems(kind, levels.Universal, 5), nil
		},
	}
	svc, _, _ := newAdminFixture(t, fetcher, 5*time.Minute)

	first, err := svc.List(context.Background(), content.KindNews, false)
	require.NoError(t, err)
	assert.Len(t, first, 5)

	_, err = svc.List(context.Background(), content.KindNews, false)
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.allCalls)
}

func TestAdminListRefetchesPastWindow(t *testing.T) {
	fetcher := &fakeFetcher{
		allFn: func(kind content.Kind) ([]content.Item, error) {
			return makeItems(kind, levels.Universal, 5), nil
		},
	}
	svc, cache, _ := newAdminFixture(t, fetcher, 5*time.Minute)

	// Plant an entry that looks fetched long ago.
	gen := cache.BeginAdminFetch(content.KindNews)
	cache.CompleteAdminFetch(content.KindNews, gen,
		makeItems(content.KindNews, levels.Universal, 2), time.Now().Add(-10*time.Minute))

	items, err := svc.List(context.Background(), content.KindNews, false)
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, 1, fetcher.allCalls)
}

func TestAdminForceRefreshBypassesCacheAndSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{
		allFn: func(kind content.Kind) ([]content.Item, error) {
			return makeItems(kind, levels.Universal, 5), nil
		},
	}
	svc, _, _ := newAdminFixture(t, fetcher, 5*time.Minute)

	_, err := svc.List(context.Background(), content.KindProjects, false)
	require.NoError(t, err)

	_, err = svc.List(context.Background(), content.KindProjects, true)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.allCalls)
}

func TestAdminListHydratesFromSnapshot(t *testing.T) {
	fetcher := &fakeFetcher{
		allFn: func(kind content.Kind) ([]content.Item, error) {
			t.Fatal("fresh snapshot must satisfy the list without a fetch")
			return nil, nil
		},
	}
	svc, _, snapshots := newAdminFixture(t, fetcher, 5*time.Minute)

	saved := makeItems(content.KindJournals, levels.Universal, 4)
	require.NoError(t, snapshots.Save(content.KindJournals, saved, time.Now()))

	items, err := svc.List(context.Background(), content.KindJournals, false)
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestMutationInvalidatesAdminAndPublicCaches(t *testing.T) {
	fetcher := &fakeFetcher{
		allFn: func(kind content.Kind) ([]content.Item, error) {
			return makeItems(kind, levels.Universal, 5), nil
		},
		createFn: func(kind content.Kind, fields map[string]string, image *repositories.Upload) (*content.Item, error) {
			return &content.Item{ID: "created", Title: fields["title"]}, nil
		},
	}
	svc, cache, snapshots := newAdminFixture(t, fetcher, 5*time.Minute)

	// Warm the admin list and a public bucket for the same kind.
	_, err := svc.List(context.Background(), content.KindNews, false)
	require.NoError(t, err)
	seedBucket(cache, levels.LevelSMA, content.KindNews, makeItems(content.KindNews, levels.LevelSMA, 6))

	item, err := svc.Create(context.Background(), content.KindNews, map[string]string{"title": "Baru"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "created", item.ID)

	_, _, ok := cache.GetAdminList(content.KindNews)
	assert.False(t, ok)

	_, ok = cache.GetItems(levels.LevelSMA, content.KindNews)
	assert.False(t, ok)

	_, _, present, err := snapshots.Load(content.KindNews)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestAdminListErrorKeepsNothing(t *testing.T) {
	fetcher := &fakeFetcher{
		allFn: func(kind content.Kind) ([]content.Item, error) {
			return nil, &repositories.FetchError{Kind: kind, Op: "list", Err: context.DeadlineExceeded}
		},
	}
	svc, cache, _ := newAdminFixture(t, fetcher, 5*time.Minute)

	_, err := svc.List(context.Background(), content.KindFacilities, false)
	require.Error(t, err)

	_, _, ok := cache.GetAdminList(content.KindFacilities)
	assert.False(t, ok)
}
