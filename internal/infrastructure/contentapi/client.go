// Package contentapi implements the HTTP client for the remote content
// source. All reads return { "data": ... } envelopes; mutations return
// { "message": ..., "data": ... }. Non-2xx and non-JSON responses surface as
// the typed errors defined in domain/repositories.
package contentapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/content"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/entities/levels"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/domain/repositories"
	"github.com/asrulmaaliy26/sma-unggul-bangsa-portal-sub000/internal/infrastructure/observability/logging"
)

// Client talks to the remote content API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logging.ChanneledLogger
}

// NewClient creates a content API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *logging.ChanneledLogger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// FetchItems requests exactly limit items of a kind. The universal level hits
// the unfiltered variant; any other level hits the level-scoped variant.
func (c *Client) FetchItems(ctx context.Context, kind content.Kind, limit int, level levels.LevelID) ([]content.Item, error) {
	path := fmt.Sprintf("/%s/limit/%d", kind, limit)
	if level != levels.Universal {
		path = fmt.Sprintf("/%s/limit/%d/%s", kind, limit, level)
	}

	body, err := c.get(ctx, kind, "list", path)
	if err != nil {
		return nil, err
	}

	var env listEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return nil, &repositories.DecodeError{Kind: kind, Op: "list", Err: err}
	}

	c.logger.Upstream().Debug("Fetched collection",
		"kind", string(kind), "limit", limit, "jenjang", string(level), "count", len(env.Data))
	return env.Data, nil
}

// FetchAll requests the full, unfiltered collection for a kind. Admin lists
// and related-item backfills use this instead of the limited variants.
func (c *Client) FetchAll(ctx context.Context, kind content.Kind) ([]content.Item, error) {
	body, err := c.get(ctx, kind, "list", "/"+string(kind))
	if err != nil {
		return nil, err
	}

	var env listEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return nil, &repositories.DecodeError{Kind: kind, Op: "list", Err: err}
	}

	c.logger.Upstream().Debug("Fetched full collection",
		"kind", string(kind), "count", len(env.Data))
	return env.Data, nil
}

// FetchDetail requests the authoritative single record by id.
func (c *Client) FetchDetail(ctx context.Context, kind content.Kind, id string) (*content.Item, error) {
	body, err := c.get(ctx, kind, "detail", fmt.Sprintf("/%s/%s", kind, id))
	if err != nil {
		return nil, err
	}

	var env itemEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return nil, &repositories.DecodeError{Kind: kind, Op: "detail", Err: err}
	}
	if env.Data == nil || env.Data.ID == "" {
		return nil, &repositories.NotFoundError{Kind: kind, ID: id}
	}

	return env.Data, nil
}

// FetchBestJournals requests the curated best-journals list for a level.
func (c *Client) FetchBestJournals(ctx context.Context, level levels.LevelID) ([]content.Item, error) {
	path := "/journals/best"
	if level != levels.Universal {
		path = "/journals/best/" + string(level)
	}

	body, err := c.get(ctx, content.KindJournals, "best", path)
	if err != nil {
		return nil, err
	}

	var env listEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return nil, &repositories.DecodeError{Kind: content.KindJournals, Op: "best", Err: err}
	}

	return env.Data, nil
}

// FetchCategories requests the category vocabularies for all categorized kinds.
func (c *Client) FetchCategories(ctx context.Context) (map[content.Kind][]string, error) {
	body, err := c.get(ctx, "", "categories", "/categories")
	if err != nil {
		return nil, err
	}

	var env categoriesEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return nil, &repositories.DecodeError{Op: "categories", Err: err}
	}

	return map[content.Kind][]string{
		content.KindNews:     env.Data.News,
		content.KindProjects: env.Data.Projects,
		content.KindJournals: env.Data.Journals,
	}, nil
}

// FetchLevelConfig requests the level-configuration mapping from /jenjang.
// An empty mapping is invalid and reported as EmptyConfigError.
func (c *Client) FetchLevelConfig(ctx context.Context) (levels.Mapping, error) {
	body, err := c.get(ctx, "", "jenjang", "/jenjang")
	if err != nil {
		return nil, err
	}

	var env levelsEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return nil, &repositories.DecodeError{Op: "jenjang", Err: err}
	}
	if len(env.Data) == 0 {
		return nil, &repositories.EmptyConfigError{}
	}

	mapping := make(levels.Mapping, len(env.Data))
	for id, lvl := range env.Data {
		lvl.ID = id
		mapping[id] = lvl
	}
	return mapping, nil
}

// Create posts a new record as a multipart form.
func (c *Client) Create(ctx context.Context, kind content.Kind, fields map[string]string, image *repositories.Upload) (*content.Item, error) {
	return c.mutate(ctx, kind, http.MethodPost, "/"+string(kind), fields, image)
}

// Update replaces a record as a multipart form.
func (c *Client) Update(ctx context.Context, kind content.Kind, id string, fields map[string]string, image *repositories.Upload) (*content.Item, error) {
	return c.mutate(ctx, kind, http.MethodPut, fmt.Sprintf("/%s/%s", kind, id), fields, image)
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, kind content.Kind, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+fmt.Sprintf("/%s/%s", kind, id), nil)
	if err != nil {
		return &repositories.FetchError{Kind: kind, Op: "delete", Err: err}
	}

	body, err := c.do(req, kind, "delete")
	if err != nil {
		return err
	}

	var env mutationEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return &repositories.DecodeError{Kind: kind, Op: "delete", Err: err}
	}
	return nil
}

func (c *Client) mutate(ctx context.Context, kind content.Kind, method, path string, fields map[string]string, image *repositories.Upload) (*content.Item, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, &repositories.FetchError{Kind: kind, Op: "mutate", Err: err}
		}
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, &repositories.FetchError{Kind: kind, Op: "mutate", Err: err}
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, &repositories.FetchError{Kind: kind, Op: "mutate", Err: err}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, &repositories.FetchError{Kind: kind, Op: "mutate", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, &repositories.FetchError{Kind: kind, Op: "mutate", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	body, err := c.do(req, kind, "mutate")
	if err != nil {
		return nil, err
	}

	var env mutationEnvelope
	if err := decodeJSON(body, &env); err != nil {
		return nil, &repositories.DecodeError{Kind: kind, Op: "mutate", Err: err}
	}
	return env.Data, nil
}

func (c *Client) get(ctx context.Context, kind content.Kind, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, &repositories.FetchError{Kind: kind, Op: op, Err: err}
	}
	return c.do(req, kind, op)
}

// do executes the request and maps transport and status failures to the
// error taxonomy. A non-2xx response carries the server message when the
// body decodes as a { "message": ... } payload.
func (c *Client) do(req *http.Request, kind content.Kind, op string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Upstream().Warn("Upstream request failed",
			"kind", string(kind), "operation", op, "error", err.Error())
		return nil, &repositories.FetchError{Kind: kind, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &repositories.FetchError{Kind: kind, Op: op, Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, &repositories.NotFoundError{Kind: kind, ID: req.URL.Path}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &repositories.FetchError{
			Kind:    kind,
			Op:      op,
			Message: serverMessage(body),
			Err:     fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	return body, nil
}
