package jenjang

import (
	"context"
	"strings"
	"sync"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
)

// Store holds the level-configuration mapping. Until the authoritative
// mapping has loaded, readers get the baked-in default mapping; the swap on
// load is atomic and total, never a partial merge.
type Store struct {
	fetcher repositories.LevelConfigFetcher
	logger  *logging.ChanneledLogger

	mu      sync.RWMutex
	mapping levels.Mapping
	loaded  bool
}

// NewStore creates a level-configuration store seeded with the default
// mapping.
func NewStore(fetcher repositories.LevelConfigFetcher, logger *logging.ChanneledLogger) *Store {
	return &Store{
		fetcher: fetcher,
		logger:  logger,
		mapping: levels.DefaultMapping(),
	}
}

// Load fetches the authoritative mapping and replaces the fallback wholesale.
// On failure the fallback stays in place and the error propagates.
func (s *Store) Load(ctx context.Context) error {
	mapping, err := s.fetcher.FetchLevelConfig(ctx)
	if err != nil {
		s.logger.Level().Warn("Level configuration fetch failed, keeping default mapping", "error", err.Error())
		return err
	}

	s.mu.Lock()
	s.mapping = mapping
	s.loaded = true
	s.mu.Unlock()

	s.logger.Level().Info("Level configuration loaded", "levels", len(mapping))
	return nil
}

// Loaded reports whether the authoritative mapping has replaced the default.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Mapping returns the current mapping (authoritative or fallback). The
// returned map must be treated as read-only.
func (s *Store) Mapping() levels.Mapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mapping
}

// Get returns the configuration for a level, falling back to the universal
// entry for unknown IDs so theme lookups never come back empty. A loaded
// mapping that omits the universal entry falls back to the baked-in one.
func (s *Store) Get(id levels.LevelID) levels.Level {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if lvl, ok := s.mapping[id]; ok {
		return lvl
	}
	if lvl, ok := s.mapping[levels.Universal]; ok {
		return lvl
	}
	return levels.DefaultMapping()[levels.Universal]
}

// Validate converts untrusted external input into a LevelID. Input is
// normalized to upper case and checked against the current mapping; anything
// unknown maps to the universal level rather than propagating an unchecked
// string.
func (s *Store) Validate(input string) levels.LevelID {
	id := levels.LevelID(strings.ToUpper(strings.TrimSpace(input)))
	if id == "" {
		return levels.Universal
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.mapping[id]; ok {
		return id
	}
	return levels.Universal
}
