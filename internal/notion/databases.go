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

package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// RetrieveDatabase retrieves a database object. With useCache set the response is
// served from, and stored in, the response cache.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string, useCache bool) (json.RawMessage, error) {
	return c.getCached(ctx, databaseCacheKey(databaseID), "/databases/"+url.PathEscape(databaseID), useCache)
}

// UpdateDatabase updates the title, description or properties of a database and
// drops its cached copy.
func (c *Client) UpdateDatabase(ctx context.Context, databaseID string,
	req UpdateDatabaseRequest) (json.RawMessage, error) {
	data, err := c.do(ctx, http.MethodPatch, "/databases/"+url.PathEscape(databaseID), nil, req)
	if err != nil {
		return nil, err
	}

	c.invalidate(databaseCacheKey(databaseID))
	return data, nil
}

// QueryDatabase returns the pages of a database matching the request. Query results
// are never cached.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string,
	req QueryDatabaseRequest) (*ListResponse, error) {
	req.PageSize = clampPageSize(req.PageSize)
	return c.doList(ctx, http.MethodPost, "/databases/"+url.PathEscape(databaseID)+"/query", nil, req)
}
