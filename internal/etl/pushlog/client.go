// Package pushlog talks to the upstream revision-lookup service and
// resolves revisions to push records during ingestion.
package pushlog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/asutherland/treeherder-service/internal/core"
	"github.com/asutherland/treeherder-service/internal/domain/model"
	"github.com/asutherland/treeherder-service/internal/etl/guid"
)

// ClientOptions groups dependencies for Client.
type ClientOptions struct {
	BaseURL string        // Required: revision-lookup API root, no trailing slash
	Timeout time.Duration // Required: per-request bound, no retries
	Logger  *slog.Logger  // Optional

	// Optional TTL cache for successful lookups.
	Cache    core.CacheRepository
	CacheTTL time.Duration

	// Optional transport override for tests.
	HTTPClient *http.Client
}

// Client is a thin HTTP+JSON retrieval layer over the pushlog service.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *slog.Logger
	cache    core.CacheRepository
	cacheTTL time.Duration
}

// NewClient constructs a pushlog client.
func NewClient(opts ClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		http:     httpClient,
		logger:   opts.Logger,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
	}
}

// BaseURL returns the configured lookup root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchJSON issues a GET with JSON headers and a bounded timeout. A
// non-200 response or an unparseable body yields (nil, nil); only
// transport-level failures (connection refused, timeout) return an error.
// There are no retries.
func (c *Client) FetchJSON(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build pushlog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		if c.logger != nil {
			c.logger.DebugContext(ctx, "pushlog returned non-200",
				"url", url, "status", resp.StatusCode)
		}
		return nil, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read pushlog body: %w", err)
	}

	if !json.Valid(body) {
		if c.logger != nil {
			c.logger.DebugContext(ctx, "pushlog returned invalid JSON", "url", url)
		}
		return nil, nil
	}
	return json.RawMessage(body), nil
}

// LookupURL builds the revision-lookup query URL for a project. Revisions
// are joined as a comma separated list.
func (c *Client) LookupURL(project string, revisions []string) string {
	return fmt.Sprintf("%s/%s/?revision=%s", c.baseURL, project, strings.Join(revisions, ","))
}

// LookupRevisions retrieves revision→push lookups per project. Revisions
// are deduplicated per project; projects whose lookup fails or returns no
// data are silently omitted, so callers must treat absence as unresolved.
// Transport failures propagate.
func (c *Client) LookupRevisions(
	ctx context.Context,
	revisions map[string][]string,
) (model.PushLookup, error) {
	lookup := make(model.PushLookup)

	for project, revs := range revisions {
		deduped := dedupeSorted(revs)
		if len(deduped) == 0 {
			continue
		}

		records, err := c.lookupProject(ctx, project, deduped)
		if err != nil {
			return nil, err
		}
		if records != nil {
			lookup[project] = records
		}
	}
	return lookup, nil
}

func (c *Client) lookupProject(
	ctx context.Context,
	project string,
	revisions []string,
) (map[string]model.PushRecord, error) {
	cacheKey := lookupCacheKey(project, revisions)

	if cached := c.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	content, err := c.FetchJSON(ctx, c.LookupURL(project, revisions))
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var records map[string]model.PushRecord
	if err := json.Unmarshal(content, &records); err != nil {
		if c.logger != nil {
			c.logger.WarnContext(ctx, "pushlog lookup has unexpected shape",
				"project", project, "error", err)
		}
		return nil, nil
	}

	c.cacheSet(ctx, cacheKey, content)
	return records, nil
}

func (c *Client) cacheGet(ctx context.Context, key string) map[string]model.PushRecord {
	if c.cache == nil {
		return nil
	}
	raw, err := c.cache.Get(ctx, key)
	if err != nil || raw == nil {
		return nil
	}
	var records map[string]model.PushRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}
	return records
}

func (c *Client) cacheSet(ctx context.Context, key string, content []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, content, c.cacheTTL); err != nil && c.logger != nil {
		c.logger.WarnContext(ctx, "cache pushlog lookup failed", "error", err)
	}
}

// lookupCacheKey derives a stable cache key from the project and the
// revision set identity.
func lookupCacheKey(project string, revisions []string) string {
	return "pushlog:lookup:" + project + ":" + guid.RevisionHash(revisions)
}

// dedupeSorted removes duplicates and sorts so equivalent revision sets
// share one query URL and one cache entry.
func dedupeSorted(revisions []string) []string {
	seen := make(map[string]struct{}, len(revisions))
	out := make([]string, 0, len(revisions))
	for _, r := range revisions {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
