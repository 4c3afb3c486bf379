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

package webhook

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/avelldt/rendercord/internal/render"
)

// Payload represents a Render webhook notification.
type Payload struct {
	Type      string    `json:"type"`
	Timestamp Timestamp `json:"timestamp"`
	Data      EventData `json:"data"`
}

// EventData carries the event-specific portion of a webhook payload.
// Only the fields the relay consumes are decoded; everything else is
// ignored.
type EventData struct {
	ID          string                `json:"id"`
	ServiceID   string                `json:"serviceId"`
	ServiceName string                `json:"serviceName"`
	Status      string                `json:"status"`
	Reason      *render.FailureReason `json:"reason"`
}

// Timestamp accepts either an RFC 3339 string or a Unix-millisecond
// number. The raw text is kept so unparseable values can still be
// shown verbatim.
type Timestamp struct {
	Raw  string
	Time time.Time
}

// UnmarshalJSON decodes the flexible timestamp shape. It never fails:
// a value that is neither a parseable string nor a number simply keeps
// its raw form with a zero Time.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		ts.Raw = s
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			ts.Time = t
		}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		ts.Raw = strings.TrimSpace(string(data))
		ts.Time = time.UnixMilli(int64(n))
		return nil
	}

	ts.Raw = strings.TrimSpace(string(data))
	return nil
}

// MarshalJSON round-trips the original representation where possible.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.Raw != "" {
		return json.Marshal(ts.Raw)
	}
	if !ts.Time.IsZero() {
		return json.Marshal(ts.Time.Format(time.RFC3339Nano))
	}
	return []byte(`""`), nil
}
