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
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/notioncache/notioncache/internal/system/constants"
)

type CLITestSuite struct {
	suite.Suite
	server     *httptest.Server
	hits       atomic.Int32
	configPath string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (suite *CLITestSuite) SetupTest() {
	suite.hits.Store(0)
	suite.T().Setenv(constants.LogLevelEnvironmentVariable, "")
	suite.T().Setenv(constants.NotionTokenEnvironmentVariable, "secret_test_token")

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/users/me", func(w http.ResponseWriter, r *http.Request) {
		suite.hits.Add(1)
		assert.Equal(suite.T(), "Bearer secret_test_token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"object":"user","id":"bot1","type":"bot","name":"Integration"}`))
	})
	mux.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		suite.hits.Add(1)
		_, _ = w.Write([]byte(`{"object":"list","results":[` +
			`{"object":"page","id":"p1","url":"https://www.notion.so/p1","properties":{` +
			`"Status":{"type":"select","select":{"name":"Open"}},` +
			`"Name":{"type":"title","title":[{"type":"text","text":{"content":"Roadmap"},"plain_text":"Roadmap"}]}}},` +
			`{"object":"database","id":"d1","url":"https://www.notion.so/d1",` +
			`"title":[{"type":"text","text":{"content":"Tasks"},"plain_text":"Tasks"}]},` +
			`{"object":"page","id":"p2","url":"https://www.notion.so/p2","properties":{` +
			`"Name":{"type":"title","title":[]}}}],"has_more":false}`))
	})
	mux.HandleFunc("/v1/pages/", func(w http.ResponseWriter, r *http.Request) {
		suite.hits.Add(1)
		_, _ = w.Write([]byte(`{"object":"page","id":"p1"}`))
	})
	mux.HandleFunc("/v1/databases/", func(w http.ResponseWriter, r *http.Request) {
		suite.hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"object":"error","status":404,"code":"object_not_found","message":"missing"}`))
	})
	suite.server = httptest.NewServer(mux)

	suite.configPath = filepath.Join(suite.T().TempDir(), "notion.yaml")
	content := fmt.Sprintf("notion:\n  base_url: %q\ncache:\n  ttl: 60\n  max_size: 10\n", suite.server.URL+"/v1")
	require.NoError(suite.T(), os.WriteFile(suite.configPath, []byte(content), 0o600))
}

func (suite *CLITestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *CLITestSuite) run(args ...string) (string, error) {
	cmd := NewRootCmd("test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (suite *CLITestSuite) TestWhoAmI() {
	out, err := suite.run("whoami", "--config", suite.configPath)

	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), out, "Name: Integration")
	assert.Contains(suite.T(), out, "ID: bot1")
	assert.Contains(suite.T(), out, "Type: bot")
}

func (suite *CLITestSuite) TestSearch() {
	out, err := suite.run("search", "roadmap", "--config", suite.configPath, "--type", "page")

	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), out, "Found 3 result(s)")
	assert.Contains(suite.T(), out, "page\tp1\tRoadmap\thttps://www.notion.so/p1")
	assert.Contains(suite.T(), out, "database\td1\tTasks\thttps://www.notion.so/d1")
	assert.Contains(suite.T(), out, "page\tp2\tUntitled\thttps://www.notion.so/p2")
}

func (suite *CLITestSuite) TestPage() {
	out, err := suite.run("page", "p1", "--config", suite.configPath)

	require.NoError(suite.T(), err)
	assert.Contains(suite.T(), out, `"id": "p1"`)
	assert.Equal(suite.T(), int32(1), suite.hits.Load())
}

func (suite *CLITestSuite) TestDatabaseNotFound() {
	_, err := suite.run("database", "d1", "--config", suite.configPath)

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "object_not_found")
}

func (suite *CLITestSuite) TestMissingToken() {
	suite.T().Setenv(constants.NotionTokenEnvironmentVariable, "")

	_, err := suite.run("whoami", "--config", suite.configPath)

	assert.ErrorIs(suite.T(), err, errMissingToken)
	assert.Equal(suite.T(), int32(0), suite.hits.Load())
}

func (suite *CLITestSuite) TestMissingConfigFile() {
	_, err := suite.run("whoami", "--config", filepath.Join(suite.T().TempDir(), "missing.yaml"))

	assert.ErrorIs(suite.T(), err, os.ErrNotExist)
}

func (suite *CLITestSuite) TestArgumentValidation() {
	_, err := suite.run("page")
	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), int32(0), suite.hits.Load())
}

func (suite *CLITestSuite) TestVersion() {
	out, err := suite.run("version")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "notion test\n", out)
}

func (suite *CLITestSuite) TestNewAppWiresCache() {
	app, err := NewApp(suite.configPath)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), app.Cache)
	assert.Equal(suite.T(), "notion", app.Cache.Name())
	assert.Equal(suite.T(), 10, app.Cache.GetStats().MaxSize)
	assert.NotNil(suite.T(), app.Client)
}

func (suite *CLITestSuite) TestNewAppCacheDisabled() {
	path := filepath.Join(suite.T().TempDir(), "disabled.yaml")
	require.NoError(suite.T(), os.WriteFile(path, []byte("cache:\n  disabled: true\n"), 0o600))

	app, err := NewApp(path)

	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), app.Cache)
}

func (suite *CLITestSuite) TestNewAppInvalidCacheConfig() {
	path := filepath.Join(suite.T().TempDir(), "invalid.yaml")
	require.NoError(suite.T(), os.WriteFile(path, []byte("cache:\n  ttl: 0\n"), 0o600))

	_, err := NewApp(path)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "invalid cache configuration")
}

func (suite *CLITestSuite) TestNewAppDefaultsWithoutConfigFile() {
	app, err := NewApp("")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), constants.DefaultNotionBaseURL, app.Config.Notion.BaseURL)
	assert.Equal(suite.T(), 1000, app.Cache.GetStats().MaxSize)
}
