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
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/notioncache/notioncache/internal/system/cache"
	"github.com/notioncache/notioncache/tests/mocks/httpmock"
)

type ClientTransportTestSuite struct {
	suite.Suite
	httpClient *httpmock.HTTPClientInterfaceMock
	cache      *cache.Cache[json.RawMessage]
	client     *Client
}

func TestClientTransportSuite(t *testing.T) {
	suite.Run(t, new(ClientTransportTestSuite))
}

func (suite *ClientTransportTestSuite) SetupTest() {
	responseCache, err := cache.New[json.RawMessage](cache.Config{TTL: time.Minute, MaxSize: 10})
	require.NoError(suite.T(), err)

	suite.cache = responseCache
	suite.httpClient = httpmock.NewHTTPClientInterfaceMock(suite.T())
	suite.client = NewClient(suite.httpClient, suite.cache, WithBaseURL("https://notion.test/v1"))
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func requestTo(method, url string) any {
	return mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == method && req.URL.String() == url
	})
}

func (suite *ClientTransportTestSuite) TestTransportErrorIsWrapped() {
	transportErr := errors.New("connection reset")
	suite.httpClient.On("Do", requestTo(http.MethodGet, "https://notion.test/v1/pages/p1")).
		Return(nil, transportErr).Once()

	_, err := suite.client.RetrievePage(context.Background(), "p1", true)

	assert.ErrorIs(suite.T(), err, transportErr)
	assert.Contains(suite.T(), err.Error(), "GET /pages/p1")
	assert.Equal(suite.T(), 0, suite.cache.Size())
}

func (suite *ClientTransportTestSuite) TestCachedPageIsFetchedOnce() {
	suite.httpClient.On("Do", requestTo(http.MethodGet, "https://notion.test/v1/pages/p1")).
		Return(jsonResponse(http.StatusOK, `{"object":"page","id":"p1"}`), nil).Once()

	first, err := suite.client.RetrievePage(context.Background(), "p1", true)
	require.NoError(suite.T(), err)
	second, err := suite.client.RetrievePage(context.Background(), "p1", true)
	require.NoError(suite.T(), err)

	assert.JSONEq(suite.T(), string(first), string(second))
	suite.httpClient.AssertNumberOfCalls(suite.T(), "Do", 1)
}

func (suite *ClientTransportTestSuite) TestUpdateDropsCachedPage() {
	suite.httpClient.On("Do", requestTo(http.MethodGet, "https://notion.test/v1/pages/p1")).
		Return(jsonResponse(http.StatusOK, `{"object":"page","id":"p1"}`), nil).Once()
	suite.httpClient.On("Do", requestTo(http.MethodPatch, "https://notion.test/v1/pages/p1")).
		Return(jsonResponse(http.StatusOK, `{"object":"page","id":"p1"}`), nil).Once()

	_, err := suite.client.RetrievePage(context.Background(), "p1", true)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), 1, suite.cache.Size())

	_, err = suite.client.UpdatePageProperties(context.Background(), "p1", map[string]any{"Done": true})
	require.NoError(suite.T(), err)

	_, found := suite.cache.Get(pageCacheKey("p1"))
	assert.False(suite.T(), found)
}

func (suite *ClientTransportTestSuite) TestAPIErrorStatusIsReported() {
	suite.httpClient.On("Do", requestTo(http.MethodGet, "https://notion.test/v1/databases/d1")).
		Return(jsonResponse(http.StatusTooManyRequests,
			`{"object":"error","status":429,"code":"rate_limited","message":"slow down"}`), nil).Once()

	_, err := suite.client.RetrieveDatabase(context.Background(), "d1", true)

	var apiErr *APIError
	require.ErrorAs(suite.T(), err, &apiErr)
	assert.Equal(suite.T(), http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(suite.T(), "rate_limited", apiErr.Code)
	assert.Equal(suite.T(), 0, suite.cache.Size())
}
