package services

import (
	"context"
	"sync"
	"time"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/interfaces"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/types"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/jenjang"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/pkg/config"
)

// HomeService assembles the landing-page payload for one level: the latest
// news and projects, the curated best journals, a facilities strip, and the
// static marketing content. The dynamic parts live in a dedicated home bucket
// separate from the paginated collections, so warming the home page never
// disturbs list pagination state.
type HomeService struct {
	cache     interfaces.Cache
	fetcher   repositories.ContentFetcher
	levels    *jenjang.Store
	marketing *content.Marketing
	logger    *logging.ChanneledLogger
}

// HomePayload is the full landing-page response for one level.
type HomePayload struct {
	Jenjang      levels.Level          `json:"jenjang"`
	LatestNews   []content.Item        `json:"latestNews"`
	Projects     []content.Item        `json:"latestProjects"`
	BestJournals []content.Item        `json:"bestJournals"`
	Facilities   []content.Item        `json:"facilities"`
	Profile      *content.Profile      `json:"profile,omitempty"`
	Slides       []content.Slide       `json:"slides,omitempty"`
	Testimonials []content.Testimonial `json:"testimonials,omitempty"`
}

func NewHomeService(cache interfaces.Cache, fetcher repositories.ContentFetcher, levelStore *jenjang.Store, marketing *content.Marketing, logger *logging.ChanneledLogger) *HomeService {
	return &HomeService{
		cache:     cache,
		fetcher:   fetcher,
		levels:    levelStore,
		marketing: marketing,
		logger:    logger,
	}
}

// GetHome returns the landing-page payload for the level, fetching the four
// dynamic sections only when the home bucket is cold. The sections are fetched
// concurrently; any single failure fails the whole load and leaves the bucket
// in its previous state.
func (s *HomeService) GetHome(ctx context.Context, level levels.LevelID) (*HomePayload, error) {
	start := time.Now()
	if data, ok := s.cache.GetHome(level); ok {
		s.logger.LogCacheOperation("home", "home", true, time.Since(start), string(level))
		return s.compose(level, data), nil
	}
	s.logger.LogCacheOperation("home", "home", false, time.Since(start), string(level))

	gen := s.cache.BeginHomeFetch(level)

	data, err := s.fetchHome(ctx, level)
	if err != nil {
		s.logger.LogError(logging.ChannelContent, "home", err, string(level))
		return nil, err
	}

	if !s.cache.CompleteHomeFetch(level, gen, data) {
		s.logger.Cache().Debug("Home fetch superseded by invalidation", "jenjang", string(level))
	}

	return s.compose(level, data), nil
}

// Warm loads the home bucket for the level if it is cold. Used at startup so
// the first visitor sees a warm cache. Errors are logged, not returned.
func (s *HomeService) Warm(ctx context.Context, level levels.LevelID) {
	if _, ok := s.cache.GetHome(level); ok {
		return
	}
	if _, err := s.GetHome(ctx, level); err != nil {
		s.logger.Startup().Warn("Home warming failed",
			"jenjang", string(level), "error", err.Error())
		return
	}
	s.logger.Startup().Info("Home cache warmed", "jenjang", string(level))
}

func (s *HomeService) fetchHome(ctx context.Context, level levels.LevelID) (*types.HomeData, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
		data     types.HomeData
	)

	section := func(run func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	section(func() error {
		items, err := s.fetcher.FetchItems(ctx, content.KindNews, config.HomeNewsLimit, level)
		if err == nil {
			data.LatestNews = items
		}
		return err
	})
	section(func() error {
		items, err := s.fetcher.FetchItems(ctx, content.KindProjects, config.HomeProjectsLimit, level)
		if err == nil {
			data.LatestProjects = items
		}
		return err
	})
	section(func() error {
		items, err := s.fetcher.FetchBestJournals(ctx, level)
		if err != nil {
			return err
		}
		if len(items) > config.BestJournalsLimit {
			items = items[:config.BestJournalsLimit]
		}
		data.BestJournals = items
		return nil
	})
	section(func() error {
		items, err := s.fetcher.FetchItems(ctx, content.KindFacilities, config.HomeFacilitiesLimit, level)
		if err == nil {
			data.Facilities = items
		}
		return err
	})

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return &data, nil
}

func (s *HomeService) compose(level levels.LevelID, data *types.HomeData) *HomePayload {
	payload := &HomePayload{
		Jenjang:      s.levels.Get(level),
		LatestNews:   data.LatestNews,
		Projects:     data.LatestProjects,
		BestJournals: data.BestJournals,
		Facilities:   data.Facilities,
	}
	if s.marketing != nil {
		payload.Profile = &s.marketing.Profile
		payload.Slides = s.marketing.Slides
		payload.Testimonials = s.marketing.Testimonials
	}
	return payload
}
