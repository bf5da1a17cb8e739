package services

import (
	"context"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/jenjang"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
)

// LevelService exposes the level configuration to the HTTP surface. The
// mapping always resolves: before the authoritative load completes (or if it
// fails) the baked-in defaults answer.
type LevelService struct {
	store  *jenjang.Store
	logger *logging.ChanneledLogger
}

func NewLevelService(store *jenjang.Store, logger *logging.ChanneledLogger) *LevelService {
	return &LevelService{store: store, logger: logger}
}

// Mapping returns every known level, universal first.
func (s *LevelService) Mapping() []levels.Level {
	mapping := s.store.Mapping()
	out := make([]levels.Level, 0, len(mapping))
	for _, id := range levels.AllIDs() {
		if lvl, ok := mapping[id]; ok {
			out = append(out, lvl)
		}
	}
	// Levels the remote config added beyond the defaults go last.
	for id, lvl := range mapping {
		if !levels.Known(id) {
			out = append(out, lvl)
		}
	}
	return out
}

// Get returns the level entry for an id, falling back to the universal entry.
func (s *LevelService) Get(id levels.LevelID) levels.Level {
	return s.store.Get(id)
}

// Validate normalizes raw client input to a known level id.
func (s *LevelService) Validate(input string) levels.LevelID {
	return s.store.Validate(input)
}

// Refresh reloads the mapping from the remote config endpoint.
func (s *LevelService) Refresh(ctx context.Context) error {
	return s.store.Load(ctx)
}
