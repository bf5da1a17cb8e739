package services

import (
	"context"
	"time"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/caching/manager"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/media"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/persistence/snapshot"
)

// AdminService serves the management lists and mutations. Admin lists are the
// full, level-unscoped collections, cached with a staleness window and backed
// by an on-disk snapshot so a restart does not force a cold refetch. Every
// mutation invalidates the admin list, its snapshot, and the public caches
// for the mutated kind.
type AdminService struct {
	cache     *manager.Manager
	fetcher   repositories.ContentFetcher
	mutator   repositories.ContentMutator
	snapshots *snapshot.Store
	images    *media.ImageProcessor
	ttl       time.Duration
	logger    *logging.ChanneledLogger
}

func NewAdminService(cache *manager.Manager, fetcher repositories.ContentFetcher, mutator repositories.ContentMutator, snapshots *snapshot.Store, images *media.ImageProcessor, ttl time.Duration, logger *logging.ChanneledLogger) *AdminService {
	return &AdminService{
		cache:     cache,
		fetcher:   fetcher,
		mutator:   mutator,
		snapshots: snapshots,
		images:    images,
		ttl:       ttl,
		logger:    logger,
	}
}

// List returns the full collection for a kind. A cached list younger than the
// staleness window is served as-is; a cold cache first tries the snapshot
// store before going to the network. force bypasses both and clears them.
func (s *AdminService) List(ctx context.Context, kind content.Kind, force bool) ([]content.Item, error) {
	if force {
		s.cache.InvalidateAdmin(kind)
		s.clearSnapshot(kind)
	} else {
		if items, fetchedAt, ok := s.cache.GetAdminList(kind); ok {
			if time.Since(fetchedAt) < s.ttl {
				return items, nil
			}
		} else if items, fetchedAt, hydrated := s.hydrate(kind); hydrated {
			if time.Since(fetchedAt) < s.ttl {
				return items, nil
			}
		}
	}

	gen := s.cache.BeginAdminFetch(kind)
	items, err := s.fetcher.FetchAll(ctx, kind)
	if err != nil {
		s.logger.LogError(logging.ChannelContent, "admin-list", err, "")
		return nil, err
	}

	fetchedAt := time.Now()
	if s.cache.CompleteAdminFetch(kind, gen, items, fetchedAt) {
		s.persistSnapshot(kind, items, fetchedAt)
	}

	return items, nil
}

// Create processes the optional image upload, posts the new record, and
// invalidates everything that could be showing the kind.
func (s *AdminService) Create(ctx context.Context, kind content.Kind, fields map[string]string, imageData []byte, imageName string) (*content.Item, error) {
	upload, err := s.processImage(imageData, imageName)
	if err != nil {
		return nil, err
	}

	item, err := s.mutator.Create(ctx, kind, fields, upload)
	if err != nil {
		s.logger.LogError(logging.ChannelContent, "admin-create", err, "")
		return nil, err
	}

	s.invalidateAfterMutation(kind)
	return item, nil
}

// Update replaces a record and invalidates like Create.
func (s *AdminService) Update(ctx context.Context, kind content.Kind, id string, fields map[string]string, imageData []byte, imageName string) (*content.Item, error) {
	upload, err := s.processImage(imageData, imageName)
	if err != nil {
		return nil, err
	}

	item, err := s.mutator.Update(ctx, kind, id, fields, upload)
	if err != nil {
		s.logger.LogError(logging.ChannelContent, "admin-update", err, "")
		return nil, err
	}

	s.invalidateAfterMutation(kind)
	return item, nil
}

// Delete removes a record and invalidates like Create.
func (s *AdminService) Delete(ctx context.Context, kind content.Kind, id string) error {
	if err := s.mutator.Delete(ctx, kind, id); err != nil {
		s.logger.LogError(logging.ChannelContent, "admin-delete", err, "")
		return err
	}

	s.invalidateAfterMutation(kind)
	return nil
}

func (s *AdminService) processImage(data []byte, name string) (*repositories.Upload, error) {
	if len(data) == 0 {
		return nil, nil
	}
	upload, err := s.images.Process(data, name)
	if err != nil {
		s.logger.LogError(logging.ChannelContent, "admin-image", err, "")
		return nil, err
	}
	return upload, nil
}

// invalidateAfterMutation drops the admin list, its snapshot, and the public
// buckets for the kind. Remote data changed; nothing cached for the kind can
// be trusted.
func (s *AdminService) invalidateAfterMutation(kind content.Kind) {
	s.cache.InvalidateAdmin(kind)
	s.clearSnapshot(kind)
	s.cache.InvalidateContent(kind)
	s.logger.Cache().Info("Caches invalidated after mutation", "kind", string(kind))
}

// hydrate restores the admin list for a kind from the snapshot store,
// preserving its original fetch time so the staleness window still applies.
func (s *AdminService) hydrate(kind content.Kind) ([]content.Item, time.Time, bool) {
	if s.snapshots == nil {
		return nil, time.Time{}, false
	}

	items, fetchedAt, present, err := s.snapshots.Load(kind)
	if err != nil {
		s.logger.Cache().Warn("Snapshot load failed", "kind", string(kind), "error", err.Error())
		return nil, time.Time{}, false
	}
	if !present {
		return nil, time.Time{}, false
	}

	gen := s.cache.BeginAdminFetch(kind)
	s.cache.CompleteAdminFetch(kind, gen, items, fetchedAt)
	s.logger.Cache().Info("Admin list hydrated from snapshot",
		"kind", string(kind), "count", len(items), "fetchedAt", fetchedAt)
	return items, fetchedAt, true
}

func (s *AdminService) persistSnapshot(kind content.Kind, items []content.Item, fetchedAt time.Time) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Save(kind, items, fetchedAt); err != nil {
		s.logger.Cache().Warn("Snapshot save failed", "kind", string(kind), "error", err.Error())
	}
}

func (s *AdminService) clearSnapshot(kind content.Kind) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Clear(kind); err != nil {
		s.logger.Cache().Warn("Snapshot clear failed", "kind", string(kind), "error", err.Error())
	}
}
