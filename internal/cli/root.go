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

// Package cli provides the command-line interface for the Notion client.
package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/notioncache/notioncache/internal/notion"
)

// NewRootCmd creates the root command.
func NewRootCmd(version string) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "notion",
		Short:        "Query the Notion API from the command line",
		Long:         `A small Notion API client. Set NOTION_API_TOKEN or pass a configuration file with --config.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file")

	newApp := func() (*App, error) {
		return NewApp(configPath)
	}

	rootCmd.AddCommand(
		newWhoAmICmd(newApp),
		newSearchCmd(newApp),
		newPageCmd(newApp),
		newDatabaseCmd(newApp),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "notion %s\n", version)
			},
		},
	)

	return rootCmd
}

func newWhoAmICmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Check the token by retrieving the bot user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			user, err := app.Client.RetrieveBotUser(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", user.Name)
			fmt.Fprintf(out, "ID: %s\n", user.ID)
			fmt.Fprintf(out, "Type: %s\n", user.Type)
			return nil
		},
	}
}

func newSearchCmd(newApp func() (*App, error)) *cobra.Command {
	var objectType string
	var pageSize int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search pages and databases, most recently edited first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			req := notion.SearchRequest{
				Query:    args[0],
				Sort:     &notion.Sort{Direction: "descending", Timestamp: "last_edited_time"},
				PageSize: pageSize,
			}
			if objectType != "" {
				req.Filter = &notion.SearchFilter{Property: "object", Value: objectType}
			}

			list, err := app.Client.Search(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Found %d result(s)\n", len(list.Results))
			for _, result := range list.Results {
				var ref notion.ObjectRef
				if err := json.Unmarshal(result, &ref); err != nil {
					return fmt.Errorf("failed to decode search result: %w", err)
				}
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", ref.Object, ref.ID, ref.DisplayTitle(), ref.URL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&objectType, "type", "", "restrict results to \"page\" or \"database\"")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "number of results to return (max 100)")
	return cmd
}

func newPageCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "page <page-id>",
		Short: "Print a page object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			data, err := app.Client.RetrievePage(cmd.Context(), args[0], true)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}
}

func newDatabaseCmd(newApp func() (*App, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "database <database-id>",
		Short: "Print a database object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			data, err := app.Client.RetrieveDatabase(cmd.Context(), args[0], true)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}
}

// writeJSON writes an indented copy of data to out.
func writeJSON(out io.Writer, data json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(out)
	return err
}
