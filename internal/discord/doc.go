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

// Package discord posts notification messages to a Discord channel.
//
// The notifier performs a single POST to the channel messages endpoint
// using bot-token authentication. There are no retries: a failed send
// surfaces as an *APIError with the response status and body, which
// the caller logs and drops.
package discord
