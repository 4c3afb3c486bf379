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

// Package render provides a read-only client for the Render REST API.
//
// The relay uses two lookups to enrich a webhook payload: the service
// the event belongs to and the event's own detail record. Both are
// plain GETs with bearer-token authentication.
//
// Both lookups are best-effort from the caller's point of view: a
// failed fetch surfaces as an *APIError carrying the HTTP status, and
// the caller is expected to continue with whatever data it has.
//
// Authentication:
//
// The client requires a Render API key, sent as a bearer token on
// every request.
//
// Example usage:
//
//	client := render.NewClient(apiKey)
//	svc, err := client.GetService(ctx, "srv-cmkp1r2ovrhq3sbva0g0")
//	if err != nil {
//	    log.Warn("service fetch failed", zap.Error(err))
//	}
package render
