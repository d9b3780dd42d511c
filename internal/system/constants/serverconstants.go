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

// Package constants defines global constants used across the system module.
package constants

const (
	// LogLevelEnvironmentVariable is the environment variable name for the log level.
	LogLevelEnvironmentVariable = "LOG_LEVEL"
	// DefaultLogLevel is the default log level used if not specified.
	DefaultLogLevel = "info"
	// NotionTokenEnvironmentVariable is the environment variable holding the Notion integration token.
	NotionTokenEnvironmentVariable = "NOTION_API_TOKEN"
)

// AuthorizationHeaderName is the name of the authorization header used in HTTP requests.
const AuthorizationHeaderName = "Authorization"

// ContentTypeHeaderName is the name of the content type header used in HTTP requests.
const ContentTypeHeaderName = "Content-Type"

// UserAgentHeaderName is the name of the user agent header used in HTTP requests.
const UserAgentHeaderName = "User-Agent"

// NotionVersionHeaderName is the name of the header selecting the Notion API version.
const NotionVersionHeaderName = "Notion-Version"

// TokenTypeBearer is the token type used in bearer authentication.
const TokenTypeBearer = "Bearer"

// ContentTypeJSON is the content type for JSON data.
const ContentTypeJSON = "application/json"

// DefaultNotionBaseURL is the base URL of the public Notion API.
const DefaultNotionBaseURL = "https://api.notion.com/v1"

// DefaultNotionVersion is the Notion API version sent when none is configured.
const DefaultNotionVersion = "2022-06-28"

// DefaultUserAgent is the user agent sent on outbound requests when none is configured.
const DefaultUserAgent = "notioncache"

// MaxPageSize is the maximum page size accepted by the Notion API.
const MaxPageSize = 100
