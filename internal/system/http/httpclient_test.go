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

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// HTTPClientTestSuite defines the test suite for HTTP client service.
type HTTPClientTestSuite struct {
	suite.Suite
}

// TestHTTPClientSuite runs the HTTP client test suite.
func TestHTTPClientSuite(t *testing.T) {
	suite.Run(t, new(HTTPClientTestSuite))
}

func (suite *HTTPClientTestSuite) TestNewHTTPClient() {
	client := NewHTTPClient()
	assert.NotNil(suite.T(), client)
	assert.Implements(suite.T(), (*HTTPClientInterface)(nil), client)

	httpClient := client.(*HTTPClient)
	assert.Equal(suite.T(), 30*time.Second, httpClient.client.Timeout)
}

func (suite *HTTPClientTestSuite) TestNewHTTPClientWithTimeout() {
	timeout := 5 * time.Second
	client := NewHTTPClientWithTimeout(timeout)

	httpClient := client.(*HTTPClient)
	assert.Equal(suite.T(), timeout, httpClient.client.Timeout)
}

func (suite *HTTPClientTestSuite) TestNewHTTPClientWithConfig() {
	custom := &http.Client{Timeout: 7 * time.Second}
	client := NewHTTPClientWithConfig(custom)

	httpClient := client.(*HTTPClient)
	assert.Same(suite.T(), custom, httpClient.client)
}

func (suite *HTTPClientTestSuite) TestDo() {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), http.MethodPost, r.Method)
		assert.Equal(suite.T(), "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	}))
	defer testServer.Close()

	client := NewHTTPClient()

	req, err := http.NewRequest(http.MethodPost, testServer.URL, strings.NewReader(`{"test": "data"}`))
	require.NoError(suite.T(), err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusCreated, resp.StatusCode)

	_ = resp.Body.Close()
}

func (suite *HTTPClientTestSuite) TestBearerClientSetsHeaders() {
	var authorization, userAgent string
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		userAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer testServer.Close()

	client := NewBearerClient("secret_token", "notioncache-test", 5*time.Second)

	req, err := http.NewRequest(http.MethodGet, testServer.URL, nil)
	require.NoError(suite.T(), err)

	resp, err := client.Do(req)
	require.NoError(suite.T(), err)
	_ = resp.Body.Close()

	assert.Equal(suite.T(), "Bearer secret_token", authorization)
	assert.Equal(suite.T(), "notioncache-test", userAgent)

	// The caller's request is left untouched
	assert.Empty(suite.T(), req.Header.Get("Authorization"))
	assert.Empty(suite.T(), req.Header.Get("User-Agent"))

	httpClient := client.(*HTTPClient)
	assert.Equal(suite.T(), 5*time.Second, httpClient.client.Timeout)
}

func (suite *HTTPClientTestSuite) TestBearerClientDefaultUserAgent() {
	var userAgent string
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer testServer.Close()

	client := NewBearerClientWithTransport("secret_token", "", time.Second, nil)

	req, err := http.NewRequest(http.MethodGet, testServer.URL, nil)
	require.NoError(suite.T(), err)

	resp, err := client.Do(req)
	require.NoError(suite.T(), err)
	_ = resp.Body.Close()

	assert.Equal(suite.T(), "notioncache", userAgent)
}
