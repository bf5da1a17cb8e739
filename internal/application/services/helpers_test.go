package services

import (
	"context"
	"sync"
	"testing"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/types"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()

	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToFile = false
	cfg.OutputToConsole = false

	logger, err := logging.NewChanneledLogger(cfg)
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return logger
}

// fakeFetcher is a programmable ContentFetcher and ContentMutator that counts
// calls so tests can assert on cache hits versus network round trips.
type fakeFetcher struct {
	mu sync.Mutex

	itemsFn   func(kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error)
	allFn     func(kind content.Kind) ([]content.Item, error)
	detailFn  func(kind content.Kind, id string) (*content.Item, error)
	bestFn    func(level levels.LevelID) ([]content.Item, error)
	catsFn    func() (map[content.Kind][]string, error)
	createFn  func(kind content.Kind, fields map[string]string, image *repositories.Upload) (*content.Item, error)
	updateFn  func(kind content.Kind, id string, fields map[string]string, image *repositories.Upload) (*content.Item, error)
	deleteFn  func(kind content.Kind, id string) error
	itemCalls int
	allCalls  int
	bestCalls int
}

func (f *fakeFetcher) FetchItems(_ context.Context, kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error) {
	f.mu.Lock()
	f.itemCalls++
	f.mu.Unlock()
	return f.itemsFn(kind, limit, level)
}

func (f *fakeFetcher) FetchAll(_ context.Context, kind content.Kind) ([]content.Item, error) {
	f.mu.Lock()
	f.allCalls++
	f.mu.Unlock()
	return f.allFn(kind)
}

func (f *fakeFetcher) FetchDetail(_ context.Context, kind content.Kind, id string) (*content.Item, error) {
	return f.detailFn(kind, id)
}

func (f *fakeFetcher) FetchBestJournals(_ context.Context, level levels.LevelID) ([]content.Item, error) {
	f.mu.Lock()
	f.bestCalls++
	f.mu.Unlock()
	return f.bestFn(level)
}

func (f *fakeFetcher) FetchCategories(_ context.Context) (map[content.Kind][]string, error) {
	return f.catsFn()
}

func (f *fakeFetcher) Create(_ context.Context, kind content.Kind, fields map[string]string, image *repositories.Upload) (*content.Item, error) {
	return f.createFn(kind, fields, image)
}

func (f *fakeFetcher) Update(_ context.Context, kind content.Kind, id string, fields map[string]string, image *repositories.Upload) (*content.Item, error) {
	return f.updateFn(kind, id, fields, image)
}

func (f *fakeFetcher) Delete(_ context.Context, kind content.Kind, id string) error {
	return f.deleteFn(kind, id)
}

func (f *fakeFetcher) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.itemCalls
}

func (f *fakeFetcher) fullCollectionCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allCalls
}

func (f *fakeFetcher) bestJournalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bestCalls
}

func homeDataWithJournals(best []content.Item) *types.HomeData {
	return &types.HomeData{BestJournals: best}
}

// makeItems builds n sequential items of a kind for one level.
func makeItems(kind content.Kind, level levels.LevelID, n int) []content.Item {
	items := make([]content.Item, n)
	for i := range items {
		items[i] = content.Item{
			ID:    string(kind) + "-" + string(rune('a'+i)),
			Level: level,
			Title: "Item " + string(rune('A'+i)),
		}
	}
	return items
}
