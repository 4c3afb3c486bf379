// Copyright 2026 The Rendercord Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package discord

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testMessage() *Message {
	return &Message{
		Embeds: []Embed{{
			Title:       "❌ my-api — Server Failed",
			Description: "Exited with status 137",
			Color:       0xef4444,
			Fields:      []Field{{Name: "Status", Value: "Failed", Inline: true}},
		}},
	}
}

func TestPost(t *testing.T) {
	var received Message

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("request method is %q, expected POST", r.Method)
		}
		if r.URL.Path != "/channels/123456789012345678/messages" {
			t.Errorf("request path is %q, expected the channel messages endpoint", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bot bot-token" {
			t.Errorf("Authorization header is %q, expected %q", got, "Bot bot-token")
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type header is %q, expected %q", got, "application/json")
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("failed to read request body: %v", err)
		}
		if err := json.Unmarshal(body, &received); err != nil {
			t.Fatalf("request body is not valid JSON: %v", err)
		}

		w.Write([]byte(`{"id":"1122334455"}`))
	}))
	defer server.Close()

	notifier := NewNotifier("bot-token", WithBaseURL(server.URL))
	if err := notifier.Post(context.Background(), "123456789012345678", testMessage()); err != nil {
		t.Fatalf("Post() unexpected error: %v", err)
	}

	if len(received.Embeds) != 1 {
		t.Fatalf("posted %d embeds, expected 1", len(received.Embeds))
	}
	if received.Embeds[0].Title != "❌ my-api — Server Failed" {
		t.Errorf("embed title is %q", received.Embeds[0].Title)
	}
	if received.Embeds[0].Color != 0xef4444 {
		t.Errorf("embed color is %#x, expected %#x", received.Embeds[0].Color, 0xef4444)
	}
}

func TestPost_APIFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Missing Permissions","code":50013}`))
	}))
	defer server.Close()

	notifier := NewNotifier("bot-token", WithBaseURL(server.URL))
	err := notifier.Post(context.Background(), "123456789012345678", testMessage())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Post() error is %T, expected *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("APIError status is %d, expected %d", apiErr.StatusCode, http.StatusForbidden)
	}
	if apiErr.Body != `{"message":"Missing Permissions","code":50013}` {
		t.Errorf("APIError body is %q, expected the response text", apiErr.Body)
	}
}

func TestLinkButtonRow(t *testing.T) {
	row := LinkButtonRow("View Logs", "https://dashboard.render.com/web/srv-1/logs")

	if row.Type != ComponentActionRow {
		t.Errorf("row type is %d, expected %d", row.Type, ComponentActionRow)
	}
	if len(row.Components) != 1 {
		t.Fatalf("row holds %d buttons, expected 1", len(row.Components))
	}
	button := row.Components[0]
	if button.Type != ComponentButton || button.Style != ButtonStyleLink {
		t.Errorf("button type/style is %d/%d, expected %d/%d",
			button.Type, button.Style, ComponentButton, ButtonStyleLink)
	}
	if button.Label != "View Logs" {
		t.Errorf("button label is %q, expected %q", button.Label, "View Logs")
	}
}
