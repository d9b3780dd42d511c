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

// Package config provides structures and functions for loading and managing client configurations.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/notioncache/notioncache/internal/system/cache"
	"github.com/notioncache/notioncache/internal/system/constants"
	"github.com/notioncache/notioncache/internal/system/log"
)

// defaultTimeout is the outbound request timeout in seconds used when none is configured.
const defaultTimeout = 30

// NotionConfig holds the Notion API connection details.
type NotionConfig struct {
	BaseURL   string `yaml:"base_url"`
	Version   string `yaml:"version"`
	Token     string `yaml:"token"`
	Timeout   int    `yaml:"timeout"`
	UserAgent string `yaml:"user_agent"`
}

// TimeoutDuration returns the configured request timeout.
func (n NotionConfig) TimeoutDuration() time.Duration {
	return time.Duration(n.Timeout) * time.Second
}

// CacheConfig holds the response cache configuration details.
//
// TTL and MaxSize are pointers so that an omitted value can be told apart from an
// explicit zero. Omitted values take the defaults; explicit values are passed to the
// cache as given and validated there.
type CacheConfig struct {
	Disabled bool `yaml:"disabled"`
	TTL      *int `yaml:"ttl"`
	MaxSize  *int `yaml:"max_size"`
}

// ToCacheConfig converts the file representation into the cache policy.
func (c CacheConfig) ToCacheConfig() cache.Config {
	cfg := cache.Config{
		TTL:     cache.DefaultTTL,
		MaxSize: cache.DefaultMaxSize,
	}
	if c.TTL != nil {
		cfg.TTL = time.Duration(*c.TTL) * time.Second
	}
	if c.MaxSize != nil {
		cfg.MaxSize = *c.MaxSize
	}
	return cfg
}

// LogConfig holds the logging configuration details.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config holds the complete configuration details of the client.
type Config struct {
	Notion NotionConfig `yaml:"notion"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
}

// Default returns a configuration populated with default values and environment overrides.
func Default() *Config {
	cfg := defaults()
	cfg.applyEnvironment()
	return cfg
}

// LoadConfig loads the configurations from the specified YAML file. Values missing
// from the file keep their defaults, and environment variables take precedence over both.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.fillBlanks()
	cfg.applyEnvironment()
	return cfg, nil
}

// defaults returns a configuration holding only default values.
func defaults() *Config {
	cfg := &Config{}
	cfg.fillBlanks()
	return cfg
}

// fillBlanks replaces empty scalar settings with their defaults.
func (c *Config) fillBlanks() {
	if c.Notion.BaseURL == "" {
		c.Notion.BaseURL = constants.DefaultNotionBaseURL
	}
	if c.Notion.Version == "" {
		c.Notion.Version = constants.DefaultNotionVersion
	}
	if c.Notion.Timeout <= 0 {
		c.Notion.Timeout = defaultTimeout
	}
	if c.Notion.UserAgent == "" {
		c.Notion.UserAgent = constants.DefaultUserAgent
	}
	if c.Log.Level == "" {
		c.Log.Level = constants.DefaultLogLevel
	}
}

// applyEnvironment overrides settings with values from the environment.
func (c *Config) applyEnvironment() {
	if token := os.Getenv(constants.NotionTokenEnvironmentVariable); token != "" {
		c.Notion.Token = token
	}
	if level := os.Getenv(constants.LogLevelEnvironmentVariable); level != "" {
		c.Log.Level = level
	}
}
