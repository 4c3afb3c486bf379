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

// Package webhook receives signed Render webhook deliveries.
//
// This package implements an HTTP server that accepts POST /webhook
// deliveries from the Render event stream, authenticates them, and
// hands the parsed payload to a dispatcher for asynchronous
// processing. The delivery is acknowledged with 200 before any
// downstream work runs; nothing that happens after acknowledgement can
// change the response the sender sees.
//
// Webhook security:
//
// Deliveries carry the standard signed-webhook headers webhook-id,
// webhook-timestamp and webhook-signature. The signature is an
// HMAC-SHA256 over "{id}.{timestamp}.{body}" keyed with the shared
// secret, base64 encoded, and compared in constant time. Timestamps
// outside a five minute window are rejected as replays. Verification
// always runs against the raw body bytes, never a re-serialized copy.
//
// Response contract:
//
//   - unknown path: 404
//   - non-POST method on /webhook: 405
//   - required configuration missing: 500
//   - unreadable body, failed verification, or invalid JSON: 400
//   - accepted: 200 with body {}
//
// Example usage:
//
//	server := webhook.NewServer(cfg, pipeline, logger)
//	if err := server.Start(ctx); err != nil {
//		logger.Fatal("server exited", zap.Error(err))
//	}
package webhook
