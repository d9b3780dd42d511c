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

// RetrievePage retrieves a page object. With useCache set the response is served
// from, and stored in, the response cache.
func (c *Client) RetrievePage(ctx context.Context, pageID string, useCache bool) (json.RawMessage, error) {
	return c.getCached(ctx, pageCacheKey(pageID), "/pages/"+url.PathEscape(pageID), useCache)
}

// UpdatePageProperties updates the properties of a page and drops its cached copy.
func (c *Client) UpdatePageProperties(ctx context.Context, pageID string,
	properties map[string]any) (json.RawMessage, error) {
	body := map[string]any{"properties": properties}

	data, err := c.do(ctx, http.MethodPatch, "/pages/"+url.PathEscape(pageID), nil, body)
	if err != nil {
		return nil, err
	}

	c.invalidate(pageCacheKey(pageID))
	return data, nil
}
