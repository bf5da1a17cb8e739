package contentapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToFile = false
	cfg.OutputToConsole = false
	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)

	return NewClient(server.URL, 5*time.Second, logger)
}

func TestFetchItemsBuildsLevelScopedPath(t *testing.T) {
	var gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"id":"n1","jenjang":"SMA","title":"Juara"}]}`))
	})

	items, err := client.FetchItems(context.Background(), content.KindNews, 6, levels.LevelSMA)
	require.NoError(t, err)
	assert.Equal(t, "/news/limit/6/SMA", gotPath)
	require.Len(t, items, 1)
	assert.Equal(t, "n1", items[0].ID)
	assert.Equal(t, levels.LevelSMA, items[0].Level)
}

func TestFetchItemsUniversalSkipsLevelSegment(t *testing.T) {
	var gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := client.FetchItems(context.Background(), content.KindProjects, 3, levels.Universal)
	require.NoError(t, err)
	assert.Equal(t, "/projects/limit/3", gotPath)
}

func TestFetchDetailMapsMissingRecordToNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Berita tidak ditemukan"}`))
	})

	_, err := client.FetchDetail(context.Background(), content.KindNews, "missing")

	var notFound *repositories.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, content.KindNews, notFound.Kind)
}

func TestFetchDetailEmptyDataIsNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	})

	_, err := client.FetchDetail(context.Background(), content.KindJournals, "j9")

	var notFound *repositories.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "j9", notFound.ID)
}

func TestServerErrorCarriesMessage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database sedang sibuk"}`))
	})

	_, err := client.FetchItems(context.Background(), content.KindNews, 6, levels.Universal)

	var fetchErr *repositories.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "database sedang sibuk", fetchErr.Message)
	assert.Contains(t, err.Error(), "database sedang sibuk")
}

func TestMalformedBodyIsDecodeError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	_, err := client.FetchItems(context.Background(), content.KindNews, 6, levels.Universal)

	var decodeErr *repositories.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestFetchLevelConfigRejectsEmptyMapping(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	})

	_, err := client.FetchLevelConfig(context.Background())

	var emptyCfg *repositories.EmptyConfigError
	require.ErrorAs(t, err, &emptyCfg)
}

func TestFetchLevelConfigSetsIDsFromKeys(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jenjang", r.URL.Path)
		w.Write([]byte(`{"data":{"SMA":{"displayName":"SMAIT Unggul Bangsa","themeColor":"indigo","typeLabel":"SMA"}}}`))
	})

	mapping, err := client.FetchLevelConfig(context.Background())
	require.NoError(t, err)
	require.Len(t, mapping, 1)
	assert.Equal(t, levels.LevelSMA, mapping[levels.LevelSMA].ID)
	assert.Equal(t, "indigo", mapping[levels.LevelSMA].ThemeColor)
}

func TestFetchBestJournalsPath(t *testing.T) {
	var gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data":[{"id":"j1","title":"Robotika","score":95}]}`))
	})

	items, err := client.FetchBestJournals(context.Background(), levels.LevelSMP)
	require.NoError(t, err)
	assert.Equal(t, "/journals/best/SMP", gotPath)
	require.Len(t, items, 1)
	assert.Equal(t, 95, items[0].Score)
}

func TestCreateSendsMultipartWithImage(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Judul Baru", r.FormValue("title"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cover.webp", header.Filename)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"created","data":{"id":"n-new","title":"Judul Baru"}}`))
	})

	item, err := client.Create(context.Background(), content.KindNews,
		map[string]string{"title": "Judul Baru"},
		&repositories.Upload{Filename: "cover.webp", ContentType: "image/webp", Data: []byte("fake")})
	require.NoError(t, err)
	assert.Equal(t, "n-new", item.ID)
}

func TestDeleteTargetsRecordPath(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"message":"deleted"}`))
	})

	require.NoError(t, client.Delete(context.Background(), content.KindProjects, "p7"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/projects/p7", gotPath)
}
