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

package message

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/avelldt/rendercord/internal/discord"
	"github.com/avelldt/rendercord/internal/render"
	"github.com/avelldt/rendercord/internal/webhook"
)

const eventServerFailed = "server_failed"

// maxFieldLength is the Discord embed field value limit.
const maxFieldLength = 1024

// timeLayout renders a medium date with a short time and zone name,
// British conventions.
const timeLayout = "2 Jan 2006, 15:04 MST"

// london is the display timezone for event times. Falls back to UTC
// when the zone database is unavailable.
var london = func() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// Build composes the Discord message for a webhook payload and the
// best-effort service/event data fetched for it. Either fetched value
// may be nil.
func Build(p *webhook.Payload, svc *render.Service, evt *render.Event) *discord.Message {
	pres := Present(p.Type, p.Data.Status)

	embed := discord.Embed{
		Title:       Title(p, svc, pres),
		Description: Description(p, evt),
		Color:       pres.Color,
		Fields:      Fields(p, evt),
	}

	msg := &discord.Message{}
	if svc != nil && svc.DashboardURL != "" {
		embed.URL = svc.DashboardURL
		msg.Components = []discord.Component{
			discord.LinkButtonRow("View Logs", svc.DashboardURL+"/logs"),
		}
	}
	msg.Embeds = []discord.Embed{embed}
	return msg
}

// Title builds the embed title. The service name falls back from the
// payload's own serviceName through the fetched service to the raw
// service ID, and finally to a generic placeholder.
func Title(p *webhook.Payload, svc *render.Service, pres Presentation) string {
	name := p.Data.ServiceName
	if name == "" && svc != nil {
		name = svc.Name
	}
	if name == "" {
		name = p.Data.ServiceID
	}
	if name == "" {
		name = "Render service"
	}
	return fmt.Sprintf("%s %s — %s", pres.Emoji, name, pres.Label)
}

// Description builds the embed description. Only server_failed events
// carry one; everything else puts its detail in fields instead.
func Description(p *webhook.Payload, evt *render.Event) string {
	if p.Type != eventServerFailed {
		return ""
	}
	return FailureReason(failureReason(p, evt))
}

// Fields emits the embed fields in a fixed order, skipping any whose
// underlying data is absent. Status is the only inline field.
func Fields(p *webhook.Payload, evt *render.Event) []discord.Field {
	var fields []discord.Field

	if v := formatTimestamp(p.Timestamp); v != "" {
		fields = append(fields, discord.Field{Name: "Time", Value: v})
	}
	if p.Data.Status != "" {
		fields = append(fields, discord.Field{Name: "Status", Value: capitalize(p.Data.Status), Inline: true})
	}
	if id := deployID(evt); id != "" {
		fields = append(fields, discord.Field{Name: "Deploy ID", Value: id})
	}
	if evt != nil && evt.Details != nil && len(evt.Details.Trigger) > 0 {
		fields = append(fields, discord.Field{Name: "Trigger", Value: formatTrigger(evt.Details.Trigger)})
	}
	if p.Type == eventServerFailed {
		fields = append(fields, discord.Field{Name: "Failure Reason", Value: FailureReason(failureReason(p, evt))})
	}

	return fields
}

// FailureReason renders the discriminated failure shape with fixed
// precedence. A nil or empty reason reports the unknown-reason text.
func FailureReason(r *render.FailureReason) string {
	switch {
	case r == nil:
	case r.NonZeroExit != nil && *r.NonZeroExit != 0:
		return fmt.Sprintf("Exited with status %d", *r.NonZeroExit)
	case r.OOMKilled != nil && *r.OOMKilled:
		return "Out of Memory"
	case r.TimedOutSeconds != nil:
		if reason := strings.TrimSpace(r.TimedOutReason); reason != "" {
			return "Timed out " + reason
		}
		return "Timed out"
	case r.Unhealthy != "":
		return r.Unhealthy
	}
	return "Failed for unknown reason"
}

// failureReason picks the failure detail, preferring the copy embedded
// in the webhook payload over the fetched event record.
func failureReason(p *webhook.Payload, evt *render.Event) *render.FailureReason {
	if p.Data.Reason != nil {
		return p.Data.Reason
	}
	if evt != nil && evt.Details != nil {
		return evt.Details.Reason
	}
	return nil
}

// deployID resolves the deploy identifier from event details, checking
// the flat field before the nested deploy reference.
func deployID(evt *render.Event) string {
	if evt == nil || evt.Details == nil {
		return ""
	}
	if evt.Details.DeployID != "" {
		return evt.Details.DeployID
	}
	if evt.Details.Deploy != nil {
		return evt.Details.Deploy.ID
	}
	return ""
}

// formatTimestamp renders the event time in the display timezone, or
// returns the raw value when it never parsed.
func formatTimestamp(ts webhook.Timestamp) string {
	if !ts.Time.IsZero() {
		return ts.Time.In(london).Format(timeLayout)
	}
	return ts.Raw
}

// formatTrigger flattens the trigger map into sorted key=value pairs.
func formatTrigger(trigger map[string]any) string {
	keys := make([]string, 0, len(trigger))
	for k := range trigger {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, trigger[k]))
	}
	return truncate(strings.Join(pairs, ", "), maxFieldLength)
}

// truncate caps s at limit runes, replacing the final rune with an
// ellipsis when it overflows.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// capitalize upper-cases the first letter only.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
