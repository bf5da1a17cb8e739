// Package manager assembles the cache stores into the single facade the
// application services depend on. The cache is the only writer path for
// cached collections: every write is a wholesale replace guarded by a
// generation check, never an in-place patch.
package manager

import (
	"time"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/interfaces"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/stores"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/types"
)

// Manager is the cache facade combining the collection, home, and admin
// stores. It implements interfaces.Cache.
type Manager struct {
	collections *stores.CollectionStore
	home        *stores.HomeStore
	admin       *stores.AdminStore
}

// NewManager creates a cache manager with empty stores for every level.
func NewManager() *Manager {
	m := &Manager{
		collections: stores.NewCollectionStore(),
		home:        stores.NewHomeStore(),
		admin:       stores.NewAdminStore(),
	}
	for _, level := range levels.AllIDs() {
		m.collections.InitializeLevel(level)
	}
	return m
}

var _ interfaces.Cache = (*Manager)(nil)

// Collection cache operations

func (m *Manager) GetItems(level levels.LevelID, kind content.Kind) ([]content.Item, bool) {
	return m.collections.GetItems(level, kind)
}

func (m *Manager) Snapshot(level levels.LevelID, kind content.Kind) types.Bucket {
	return m.collections.Snapshot(level, kind)
}

func (m *Manager) BeginFetch(level levels.LevelID, kind content.Kind) uint64 {
	return m.collections.BeginFetch(level, kind)
}

func (m *Manager) CompleteFetch(level levels.LevelID, kind content.Kind, gen uint64, items []content.Item, requestedLimit int) bool {
	return m.collections.CompleteFetch(level, kind, gen, items, requestedLimit)
}

func (m *Manager) Invalidate(level levels.LevelID, kind content.Kind) {
	m.collections.Invalidate(level, kind)
}

func (m *Manager) InvalidateLevel(level levels.LevelID) {
	m.collections.InvalidateLevel(level)
}

func (m *Manager) GetCategories(kind content.Kind) ([]string, bool) {
	return m.collections.GetCategories(kind)
}

func (m *Manager) SetCategories(vocab map[content.Kind][]string) {
	m.collections.SetCategories(vocab)
}

// Home cache operations

func (m *Manager) GetHome(level levels.LevelID) (*types.HomeData, bool) {
	return m.home.GetHome(level)
}

func (m *Manager) BeginHomeFetch(level levels.LevelID) uint64 {
	return m.home.BeginHomeFetch(level)
}

func (m *Manager) CompleteHomeFetch(level levels.LevelID, gen uint64, data *types.HomeData) bool {
	return m.home.CompleteHomeFetch(level, gen, data)
}

func (m *Manager) InvalidateHome(level levels.LevelID) {
	m.home.InvalidateHome(level)
}

// Admin cache operations

func (m *Manager) GetAdminList(kind content.Kind) ([]content.Item, time.Time, bool) {
	return m.admin.GetAdminList(kind)
}

func (m *Manager) BeginAdminFetch(kind content.Kind) uint64 {
	return m.admin.BeginAdminFetch(kind)
}

func (m *Manager) CompleteAdminFetch(kind content.Kind, gen uint64, items []content.Item, fetchedAt time.Time) bool {
	return m.admin.CompleteAdminFetch(kind, gen, items, fetchedAt)
}

func (m *Manager) InvalidateAdmin(kind content.Kind) {
	m.admin.InvalidateAdmin(kind)
}

// InvalidateContent clears every public cache touched by a content mutation:
// the mutated kind's bucket in every level plus every home bucket (home rows
// may embed items of any kind).
func (m *Manager) InvalidateContent(kind content.Kind) {
	for _, level := range levels.AllIDs() {
		m.collections.Invalidate(level, kind)
		m.home.InvalidateHome(level)
	}
}
