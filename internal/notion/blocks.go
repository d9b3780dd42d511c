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
	"strconv"
)

// RetrieveBlock retrieves a single block.
func (c *Client) RetrieveBlock(ctx context.Context, blockID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/blocks/"+url.PathEscape(blockID), nil, nil)
}

// RetrieveBlockChildren lists the children of a block. An empty cursor starts at the
// first child and a zero page size leaves the API default.
func (c *Client) RetrieveBlockChildren(ctx context.Context, blockID, startCursor string,
	pageSize int) (*ListResponse, error) {
	query := url.Values{}
	if startCursor != "" {
		query.Set("start_cursor", startCursor)
	}
	if size := clampPageSize(pageSize); size > 0 {
		query.Set("page_size", strconv.Itoa(size))
	}

	return c.doList(ctx, http.MethodGet, "/blocks/"+url.PathEscape(blockID)+"/children", query, nil)
}

// AppendBlockChildren appends blocks to the children of a block.
func (c *Client) AppendBlockChildren(ctx context.Context, blockID string, children []any) (json.RawMessage, error) {
	body := map[string]any{"children": children}
	return c.do(ctx, http.MethodPatch, "/blocks/"+url.PathEscape(blockID)+"/children", nil, body)
}

// DeleteBlock archives a block.
func (c *Client) DeleteBlock(ctx context.Context, blockID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, "/blocks/"+url.PathEscape(blockID), nil, nil)
}
