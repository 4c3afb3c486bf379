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

package render

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Render API endpoint.
const DefaultBaseURL = "https://api.render.com/v1"

// APIError reports a non-success response from the Render API.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("render API returned %d for %s", e.StatusCode, e.URL)
}

// httpClient implements the Client interface against the REST API.
type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(c *httpClient) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.client = hc
	}
}

// NewClient creates a new Render API client with the provided API key.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetService retrieves a service by ID.
func (c *httpClient) GetService(ctx context.Context, id string) (*Service, error) {
	var svc Service
	if err := c.get(ctx, "/services/"+url.PathEscape(id), &svc); err != nil {
		return nil, fmt.Errorf("failed to get service %s: %w", id, err)
	}
	return &svc, nil
}

// GetEvent retrieves an event by ID.
func (c *httpClient) GetEvent(ctx context.Context, id string) (*Event, error) {
	var event Event
	if err := c.get(ctx, "/events/"+url.PathEscape(id), &event); err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", id, err)
	}
	return &event, nil
}

// get performs an authenticated GET and decodes the JSON response into
// out. Non-2xx responses become an *APIError.
func (c *httpClient) get(ctx context.Context, path string, out any) error {
	target := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: resp.StatusCode, URL: target}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
