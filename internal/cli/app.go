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

package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/notioncache/notioncache/internal/notion"
	"github.com/notioncache/notioncache/internal/system/cache"
	"github.com/notioncache/notioncache/internal/system/config"
	"github.com/notioncache/notioncache/internal/system/constants"
	httpservice "github.com/notioncache/notioncache/internal/system/http"
	"github.com/notioncache/notioncache/internal/system/log"
)

// errMissingToken is returned when no integration token is configured.
var errMissingToken = errors.New(constants.NotionTokenEnvironmentVariable + " is not set")

// App holds the collaborators shared by the CLI commands.
type App struct {
	Config *config.Config
	Cache  *cache.Cache[json.RawMessage]
	Client *notion.Client
}

// NewApp loads the configuration and wires the response cache into a Notion client.
// An empty path uses the defaults and the environment only.
func NewApp(configPath string) (*App, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CLI"))
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	if cfg.Notion.Token == "" {
		return nil, errMissingToken
	}

	var responseCache *cache.Cache[json.RawMessage]
	if cfg.Cache.Disabled {
		logger.Info("Response caching is disabled")
	} else {
		var err error
		responseCache, err = cache.New[json.RawMessage](cfg.Cache.ToCacheConfig(), cache.WithName("notion"))
		if err != nil {
			return nil, err
		}
	}

	httpClient := httpservice.NewBearerClient(cfg.Notion.Token, cfg.Notion.UserAgent, cfg.Notion.TimeoutDuration())
	client := notion.NewClient(httpClient, responseCache,
		notion.WithBaseURL(cfg.Notion.BaseURL),
		notion.WithNotionVersion(cfg.Notion.Version),
	)

	logger.Debug("Notion client initialized", log.String("baseURL", cfg.Notion.BaseURL),
		log.String("token", log.MaskString(cfg.Notion.Token)))

	return &App{
		Config: cfg,
		Cache:  responseCache,
		Client: client,
	}, nil
}
