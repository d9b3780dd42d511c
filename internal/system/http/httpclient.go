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

// Package http provides a centralized HTTP client service for making outbound HTTP requests.
package http

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/notioncache/notioncache/internal/system/constants"
)

// defaultTimeout is the timeout applied by NewHTTPClient.
const defaultTimeout = 30 * time.Second

// HTTPClientInterface defines the interface for HTTP client operations.
type HTTPClientInterface interface {
	// Do executes an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient implements HTTPClientInterface and provides a centralized HTTP client.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new HTTPClient with default settings.
func NewHTTPClient() HTTPClientInterface {
	return NewHTTPClientWithTimeout(defaultTimeout)
}

// NewHTTPClientWithTimeout creates a new HTTPClient with a custom timeout.
func NewHTTPClientWithTimeout(timeout time.Duration) HTTPClientInterface {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewHTTPClientWithConfig creates a new HTTPClient with custom configuration.
func NewHTTPClientWithConfig(client *http.Client) HTTPClientInterface {
	return &HTTPClient{
		client: client,
	}
}

// NewBearerClient creates a new HTTPClient that authenticates every request with the
// given bearer token and identifies itself with the given user agent.
func NewBearerClient(token, userAgent string, timeout time.Duration) HTTPClientInterface {
	return NewBearerClientWithTransport(token, userAgent, timeout, http.DefaultTransport)
}

// NewBearerClientWithTransport is NewBearerClient on top of a custom base transport.
func NewBearerClientWithTransport(token, userAgent string, timeout time.Duration,
	base http.RoundTripper) HTTPClientInterface {
	if base == nil {
		base = http.DefaultTransport
	}
	if userAgent == "" {
		userAgent = constants.DefaultUserAgent
	}

	baseClient := &http.Client{
		Transport: &userAgentRoundTripper{
			wrapped:   base,
			userAgent: userAgent,
		},
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, baseClient)
	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   constants.TokenTypeBearer,
	})

	client := oauth2.NewClient(ctx, source)
	client.Timeout = timeout

	return &HTTPClient{
		client: client,
	}
}

// Do executes an HTTP request and returns an HTTP response.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}

// userAgentRoundTripper sets the User-Agent header on every outgoing request.
type userAgentRoundTripper struct {
	wrapped   http.RoundTripper
	userAgent string
}

// RoundTrip implements http.RoundTripper.
func (rt *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone request to avoid mutating the original
	clone := req.Clone(req.Context())
	clone.Header.Set(constants.UserAgentHeaderName, rt.userAgent)
	return rt.wrapped.RoundTrip(clone)
}
