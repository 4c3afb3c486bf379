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

import "context"

// Client is the read-only surface of the Render API used by the relay.
type Client interface {
	// GetService retrieves a service by ID.
	GetService(ctx context.Context, id string) (*Service, error)
	// GetEvent retrieves an event by ID.
	GetEvent(ctx context.Context, id string) (*Event, error)
}

// Service describes a Render service.
type Service struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	DashboardURL string `json:"dashboardUrl"`
}

// Event describes an entry on a service's event timeline.
type Event struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	ServiceID string        `json:"serviceId"`
	Details   *EventDetails `json:"details"`
}

// EventDetails is the loosely shaped detail object attached to some
// events. It is decoded defensively: unknown fields are ignored and
// absent fields stay at their zero value.
type EventDetails struct {
	Reason   *FailureReason `json:"reason"`
	DeployID string         `json:"deployId"`
	Deploy   *DeployRef     `json:"deploy"`
	Trigger  map[string]any `json:"trigger"`
}

// DeployRef identifies a deploy nested inside event details.
type DeployRef struct {
	ID string `json:"id"`
}

// FailureReason is the discriminated failure shape reported for
// server_failed events. At most one variant is expected to be
// populated.
type FailureReason struct {
	NonZeroExit     *int64 `json:"nonZeroExit"`
	OOMKilled       *bool  `json:"oomKilled"`
	TimedOutSeconds *int64 `json:"timedOutSeconds"`
	TimedOutReason  string `json:"timedOutReason"`
	Unhealthy       string `json:"unhealthy"`
}
