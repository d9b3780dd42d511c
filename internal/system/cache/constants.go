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

package cache

import "time"

const (
	// DefaultTTL is the TTL applied by callers that do not configure one.
	DefaultTTL = 600 * time.Second
	// DefaultMaxSize is the entry limit applied by callers that do not configure one.
	DefaultMaxSize = 1000
	// defaultCacheName is the name given to caches created without WithName.
	defaultCacheName = "default"
)
