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

import "encoding/json"

// RichText is a Notion rich text object.
type RichText struct {
	Type      string      `json:"type,omitempty"`
	Text      TextContent `json:"text"`
	PlainText string      `json:"plain_text,omitempty"`
}

// TextContent holds the content of a text rich text object.
type TextContent struct {
	Content string `json:"content"`
}

// NewRichText returns a plain text rich text object.
func NewRichText(content string) RichText {
	return RichText{Type: "text", Text: TextContent{Content: content}}
}

// Sort orders database query or search results.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

// SearchFilter restricts search results to one object type.
type SearchFilter struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// SearchRequest is the body of a search call.
type SearchRequest struct {
	Query       string        `json:"query,omitempty"`
	Filter      *SearchFilter `json:"filter,omitempty"`
	Sort        *Sort         `json:"sort,omitempty"`
	StartCursor string        `json:"start_cursor,omitempty"`
	PageSize    int           `json:"page_size,omitempty"`
}

// QueryDatabaseRequest is the body of a database query. Filter is passed to the API as given.
type QueryDatabaseRequest struct {
	Filter      any    `json:"filter,omitempty"`
	Sorts       []Sort `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

// UpdateDatabaseRequest is the body of a database update.
type UpdateDatabaseRequest struct {
	Title       []RichText     `json:"title,omitempty"`
	Description []RichText     `json:"description,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
}

// ListResponse is a paginated list of Notion objects.
type ListResponse struct {
	Object     string            `json:"object"`
	Results    []json.RawMessage `json:"results"`
	NextCursor *string           `json:"next_cursor"`
	HasMore    bool              `json:"has_more"`
}

// untitled is shown for pages and databases without a title.
const untitled = "Untitled"

// ObjectRef holds the fields shared by every Notion object, plus what is needed to
// show the title of a page or database.
type ObjectRef struct {
	Object     string              `json:"object"`
	ID         string              `json:"id"`
	URL        string              `json:"url,omitempty"`
	Title      []RichText          `json:"title,omitempty"`
	Properties map[string]Property `json:"properties,omitempty"`
}

// Property is the part of a page property needed to find the page title.
type Property struct {
	Type  string     `json:"type"`
	Title []RichText `json:"title,omitempty"`
}

// DisplayTitle returns the plain text title of a page or database. A page is titled
// by its property of type "title", a database by its own title.
func (o ObjectRef) DisplayTitle() string {
	title := o.Title
	if o.Object == "page" {
		title = nil
		for _, property := range o.Properties {
			if property.Type == "title" {
				title = property.Title
				break
			}
		}
	}

	if len(title) == 0 {
		return untitled
	}
	text := title[0].PlainText
	if text == "" {
		text = title[0].Text.Content
	}
	if text == "" {
		return untitled
	}
	return text
}

// User is a Notion user or bot.
type User struct {
	Object    string `json:"object"`
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
