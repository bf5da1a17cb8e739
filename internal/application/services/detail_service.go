package services

import (
	"context"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/interfaces"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/pkg/config"
)

// DetailService resolves single records. A detail view renders immediately
// from whatever cached copy exists (paginated bucket first, then the home
// bucket) while an authoritative fetch confirms the record. When the fetch
// fails but a cached copy exists, the cached copy stands; a miss everywhere
// is a not-found.
type DetailService struct {
	cache   interfaces.Cache
	fetcher repositories.ContentFetcher
	logger  *logging.ChanneledLogger
}

// ConfirmResult carries the outcome of the authoritative detail fetch.
type ConfirmResult struct {
	Item *content.Item
	Err  error
}

// Resolution is a detail lookup in progress. Immediate and Related are
// available synchronously from cache; Confirmed always delivers exactly one
// result. RelatedBackfill is non-nil only when the paginated bucket for the
// kind is empty, in which case it delivers the list derived from the full
// collection (possibly empty on error).
type Resolution struct {
	Immediate       *content.Item
	Related         []content.Item
	Confirmed       <-chan ConfirmResult
	RelatedBackfill <-chan []content.Item
}

func NewDetailService(cache interfaces.Cache, fetcher repositories.ContentFetcher, logger *logging.ChanneledLogger) *DetailService {
	return &DetailService{cache: cache, fetcher: fetcher, logger: logger}
}

// Resolve starts a detail lookup for one record. The cached copy (if any) and
// the related list return synchronously; the authoritative fetch and any
// related backfill run concurrently and deliver on the channels. Related items
// always come from the paginated bucket for the kind; when that bucket is
// empty they are backfilled from the full collection, even if the record
// itself was found in the home bucket.
func (s *DetailService) Resolve(ctx context.Context, level levels.LevelID, kind content.Kind, id string) *Resolution {
	res := &Resolution{}
	res.Immediate = s.findCached(level, kind, id)

	bucket, _ := s.cache.GetItems(level, kind)
	if len(bucket) > 0 {
		res.Related = content.Related(bucket, id, config.RelatedItemsLimit)
	}

	confirmed := make(chan ConfirmResult, 1)
	res.Confirmed = confirmed
	go func() {
		item, err := s.fetcher.FetchDetail(ctx, kind, id)
		if err != nil {
			s.logger.LogError(logging.ChannelContent, "detail", err, string(level))
		}
		confirmed <- ConfirmResult{Item: item, Err: err}
	}()

	if len(bucket) == 0 {
		backfill := make(chan []content.Item, 1)
		res.RelatedBackfill = backfill
		go func() {
			items, err := s.fetcher.FetchAll(ctx, kind)
			if err != nil {
				s.logger.Content().Warn("Related backfill failed",
					"kind", string(kind), "id", id, "error", err.Error())
				backfill <- nil
				return
			}
			backfill <- content.Related(items, id, config.RelatedItemsLimit)
		}()
	}

	return res
}

// Await drives a Resolution to its final answer: the confirmed record when
// the fetch succeeds, the cached copy when the fetch fails but a copy exists,
// and the fetch error otherwise. The related list is whichever of the
// synchronous or backfilled lists materialized.
func (s *DetailService) Await(ctx context.Context, res *Resolution) (*content.Item, []content.Item, error) {
	item := res.Immediate
	related := res.Related

	select {
	case confirm := <-res.Confirmed:
		if confirm.Err == nil {
			item = confirm.Item
		} else if item == nil {
			return nil, nil, confirm.Err
		}
	case <-ctx.Done():
		if item == nil {
			return nil, nil, ctx.Err()
		}
	}

	if res.RelatedBackfill != nil {
		select {
		case backfilled := <-res.RelatedBackfill:
			related = backfilled
		case <-ctx.Done():
		}
	}

	return item, related, nil
}

// findCached searches the caches in priority order: the paginated bucket
// first, then the matching home bucket section.
func (s *DetailService) findCached(level levels.LevelID, kind content.Kind, id string) *content.Item {
	if items, ok := s.cache.GetItems(level, kind); ok {
		if item := content.FindByID(items, id); item != nil {
			return item
		}
	}

	if home, ok := s.cache.GetHome(level); ok {
		var pool []content.Item
		switch kind {
		case content.KindNews:
			pool = home.LatestNews
		case content.KindProjects:
			pool = home.LatestProjects
		case content.KindJournals:
			pool = home.BestJournals
		case content.KindFacilities:
			pool = home.Facilities
		}
		if item := content.FindByID(pool, id); item != nil {
			return item
		}
	}
	return nil
}
