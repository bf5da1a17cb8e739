// Package repositories defines the contracts the application services consume
// to reach the remote content source. Implementations live in
// infrastructure/contentapi.
package repositories

import (
	"context"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
)

// Upload carries a processed image attached to a create/update mutation.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ContentFetcher reads collections and single records from the remote source.
type ContentFetcher interface {
	// FetchItems requests exactly limit items of the given kind for the given
	// level. The universal level means no level filter.
	FetchItems(ctx context.Context, kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error)

	// FetchAll requests the full, unfiltered collection for a kind.
	FetchAll(ctx context.Context, kind content.Kind) ([]content.Item, error)

	// FetchDetail requests the authoritative single record by id.
	FetchDetail(ctx context.Context, kind content.Kind, id string) (*content.Item, error)

	// FetchBestJournals requests the curated best-journals list for a level.
	FetchBestJournals(ctx context.Context, level levels.LevelID) ([]content.Item, error)

	// FetchCategories requests the category vocabularies for every kind that
	// carries one.
	FetchCategories(ctx context.Context) (map[content.Kind][]string, error)
}

// LevelConfigFetcher reads the level-configuration mapping.
type LevelConfigFetcher interface {
	FetchLevelConfig(ctx context.Context) (levels.Mapping, error)
}

// ContentMutator performs admin create/update/delete calls against the remote
// source. The portal never mutates content any other way.
type ContentMutator interface {
	Create(ctx context.Context, kind content.Kind, fields map[string]string, image *Upload) (*content.Item, error)
	Update(ctx context.Context, kind content.Kind, id string, fields map[string]string, image *Upload) (*content.Item, error)
	Delete(ctx context.Context, kind content.Kind, id string) error
}
