/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package notion provides a client for the Notion API that caches read responses.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/notioncache/notioncache/internal/system/cache"
	"github.com/notioncache/notioncache/internal/system/constants"
	httpservice "github.com/notioncache/notioncache/internal/system/http"
	"github.com/notioncache/notioncache/internal/system/log"
)

const loggerComponentName = "NotionClient"

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets the API base URL, e.g. for a proxy or a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithNotionVersion sets the value of the Notion-Version header.
func WithNotionVersion(version string) ClientOption {
	return func(c *Client) {
		c.version = version
	}
}

// Client calls the Notion API. Pages and databases retrieved with caching enabled
// are kept in the response cache until they expire or are updated through this client.
//
// Cached responses are shared between callers and must not be modified.
type Client struct {
	httpClient  httpservice.HTTPClientInterface
	cache       *cache.Cache[json.RawMessage]
	group       singleflight.Group
	genMu       sync.Mutex
	generations map[string]uint64
	baseURL     string
	version     string
	logger      *log.Logger
}

// NewClient creates a new Notion client. A nil cache disables response caching.
func NewClient(httpClient httpservice.HTTPClientInterface, responseCache *cache.Cache[json.RawMessage],
	opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  httpClient,
		cache:       responseCache,
		generations: make(map[string]uint64),
		baseURL:     constants.DefaultNotionBaseURL,
		version:     constants.DefaultNotionVersion,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getCached serves a GET from the cache when possible and stores successful responses.
// Concurrent misses for the same key share a single request. The shared request is
// not bound to any one caller's context; each caller stops waiting when its own
// context is done, while the request itself is bounded by the HTTP client timeout.
func (c *Client) getCached(ctx context.Context, key, path string, useCache bool) (json.RawMessage, error) {
	if !useCache || c.cache == nil {
		return c.do(ctx, http.MethodGet, path, nil, nil)
	}

	if body, found := c.cache.Get(key); found {
		c.logger.Debug("Serving response from cache", log.String("key", key))
		return body, nil
	}

	sharedCtx := context.WithoutCancel(ctx)
	results := c.group.DoChan(key, func() (any, error) {
		generation := c.generation(key)
		body, err := c.do(sharedCtx, http.MethodGet, path, nil, nil)
		if err != nil {
			return nil, err
		}
		c.storeIfCurrent(key, generation, body)
		return body, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		if result.Shared {
			c.logger.Debug("Shared in-flight response", log.String("key", key))
		}
		return result.Val.(json.RawMessage), nil
	}
}

// generation returns the invalidation count of a key.
func (c *Client) generation(key string) uint64 {
	c.genMu.Lock()
	defer c.genMu.Unlock()
	return c.generations[key]
}

// storeIfCurrent caches body unless the key was invalidated after generation was read.
func (c *Client) storeIfCurrent(key string, generation uint64, body json.RawMessage) {
	c.genMu.Lock()
	defer c.genMu.Unlock()

	if c.generations[key] != generation {
		c.logger.Debug("Discarding response fetched before invalidation", log.String("key", key))
		return
	}
	c.cache.Set(key, body)
}

// invalidate drops a cached response after a mutation of the same resource. A read
// of the key that is still in flight will not store its result.
func (c *Client) invalidate(key string) {
	if c.cache == nil {
		return
	}

	c.genMu.Lock()
	c.generations[key]++
	c.cache.Delete(key)
	c.genMu.Unlock()

	c.group.Forget(key)
	c.logger.Debug("Invalidated cached response", log.String("key", key))
}

// do sends a request to the Notion API and returns the raw response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values,
	body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	req.Header.Set(constants.NotionVersionHeaderName, c.version)

	c.logger.Debug("Sending request", log.String("method", method), log.String(log.LoggerKeyRequestPath, path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Error("Failed to close response body", log.Error(cerr))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Warn("Notion API rate limit reached", log.String(log.LoggerKeyRequestPath, path),
			log.String("retryAfter", resp.Header.Get("Retry-After")))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode, data)
	}

	return json.RawMessage(data), nil
}

// doList sends a request whose response is a paginated list.
func (c *Client) doList(ctx context.Context, method, path string, query url.Values,
	body any) (*ListResponse, error) {
	data, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	var list ListResponse
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to decode list response: %w", err)
	}
	return &list, nil
}

// clampPageSize limits a page size to what the API accepts. Zero leaves the API default.
func clampPageSize(pageSize int) int {
	if pageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	if pageSize < 0 {
		return 0
	}
	return pageSize
}
