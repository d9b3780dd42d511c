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

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTTL is returned when the configured TTL is not positive.
	ErrInvalidTTL = errors.New("ttl must be positive")
	// ErrInvalidMaxSize is returned when the configured maximum size is negative.
	ErrInvalidMaxSize = errors.New("max size must not be negative")
)

// ConfigurationError reports an invalid cache configuration at construction time.
type ConfigurationError struct {
	Field string
	Value any
	Err   error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid cache configuration: %s=%v: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
