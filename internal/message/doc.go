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

// Package message turns webhook payloads into Discord messages.
//
// It has two halves: the presenter, a pure mapping from event type and
// status to a display label, emoji and embed color; and the formatter,
// which composes the embed title, description and field list from the
// payload plus whatever service and event data the fetches managed to
// return. Both halves tolerate missing data, so a message can always
// be produced from the payload alone.
package message
