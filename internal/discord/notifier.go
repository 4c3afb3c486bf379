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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Discord REST API endpoint.
const DefaultBaseURL = "https://discord.com/api/v10"

// maxErrorBody caps how much of an error response is captured.
const maxErrorBody = 4 << 10

// APIError reports a non-success response from the Discord API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("discord API returned %d: %s", e.StatusCode, e.Body)
}

// Notifier posts messages to Discord channels with bot-token
// authentication.
type Notifier struct {
	baseURL string
	token   string
	client  *http.Client
}

// Option configures the notifier.
type Option func(*Notifier)

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(n *Notifier) {
		if base != "" {
			n.baseURL = base
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(n *Notifier) {
		n.client = hc
	}
}

// NewNotifier creates a notifier using the provided bot token.
func NewNotifier(botToken string, opts ...Option) *Notifier {
	n := &Notifier{
		baseURL: DefaultBaseURL,
		token:   botToken,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Post sends a message to the given channel. A non-success response
// becomes an *APIError carrying the status code and response body.
func (n *Notifier) Post(ctx context.Context, channelID string, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	target := n.baseURL + "/channels/" + url.PathEscape(channelID) + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+n.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Body: string(text)}
	}

	io.Copy(io.Discard, resp.Body)
	return nil
}
