package jenjang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
)

type fakeConfigFetcher struct {
	mapping levels.Mapping
	err     error
}

func (f *fakeConfigFetcher) FetchLevelConfig(context.Context) (levels.Mapping, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.mapping, nil
}

func quietLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()

	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToFile = false
	cfg.OutputToConsole = false

	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)
	return logger
}

func TestStoreServesDefaultsBeforeLoad(t *testing.T) {
	store := NewStore(&fakeConfigFetcher{}, quietLogger(t))

	assert.False(t, store.Loaded())
	assert.Len(t, store.Mapping(), 5)

	sma := store.Get(levels.LevelSMA)
	assert.Equal(t, levels.LevelSMA, sma.ID)
	assert.NotEmpty(t, sma.DisplayName)
	assert.NotEmpty(t, sma.ThemeColor)
}

func TestLoadReplacesMappingWholesale(t *testing.T) {
	remote := levels.Mapping{
		levels.Universal: {ID: levels.Universal, DisplayName: "Yayasan", ThemeColor: "zinc"},
		levels.LevelSMA:  {ID: levels.LevelSMA, DisplayName: "SMA Baru", ThemeColor: "violet"},
	}
	store := NewStore(&fakeConfigFetcher{mapping: remote}, quietLogger(t))

	require.NoError(t, store.Load(context.Background()))

	assert.True(t, store.Loaded())
	// Total replacement: defaults absent from the remote mapping are gone.
	assert.Len(t, store.Mapping(), 2)
	assert.Equal(t, "SMA Baru", store.Get(levels.LevelSMA).DisplayName)
	assert.Equal(t, "violet", store.Get(levels.LevelSMA).ThemeColor)
}

func TestLoadFailureKeepsFallback(t *testing.T) {
	store := NewStore(&fakeConfigFetcher{err: &repositories.EmptyConfigError{}}, quietLogger(t))

	err := store.Load(context.Background())
	require.Error(t, err)

	var emptyCfg *repositories.EmptyConfigError
	assert.ErrorAs(t, err, &emptyCfg)

	assert.False(t, store.Loaded())
	assert.Len(t, store.Mapping(), 5)
	assert.Equal(t, levels.LevelSD, store.Get(levels.LevelSD).ID)
}

func TestGetUnknownFallsBackToUniversal(t *testing.T) {
	store := NewStore(&fakeConfigFetcher{}, quietLogger(t))

	got := store.Get(levels.LevelID("SMK"))
	assert.Equal(t, levels.Universal, got.ID)
}

func TestGetFallsBackToDefaultUniversalEntry(t *testing.T) {
	// A loaded mapping may omit the universal entry entirely; lookups still
	// return non-empty display values.
	remote := levels.Mapping{
		levels.LevelSMA: {ID: levels.LevelSMA, DisplayName: "SMA Baru", ThemeColor: "violet"},
	}
	store := NewStore(&fakeConfigFetcher{mapping: remote}, quietLogger(t))
	require.NoError(t, store.Load(context.Background()))

	got := store.Get(levels.LevelSD)
	assert.Equal(t, levels.Universal, got.ID)
	assert.NotEmpty(t, got.DisplayName)
	assert.NotEmpty(t, got.ThemeColor)
}

func TestValidateNormalizesInput(t *testing.T) {
	store := NewStore(&fakeConfigFetcher{}, quietLogger(t))

	assert.Equal(t, levels.LevelSMA, store.Validate("sma"))
	assert.Equal(t, levels.LevelTK, store.Validate("  TK "))
	assert.Equal(t, levels.Universal, store.Validate("smk"))
	assert.Equal(t, levels.Universal, store.Validate(""))
}
