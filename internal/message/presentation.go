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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Embed colors, 0xRRGGBB.
const (
	ColorRed   = 0xef4444
	ColorAmber = 0xf59e0b
	ColorGreen = 0x22c55e
	ColorBlue  = 0x3b82f6
	ColorGray  = 0x94a3b8
)

// Presentation is the display treatment of an event: label, emoji and
// embed color.
type Presentation struct {
	Label string
	Emoji string
	Color int
}

// treatment is the emoji/color half of a presentation; labels are
// always derived from the event type.
type treatment struct {
	emoji string
	color int
}

// eventTreatments is the closed mapping of known event types to their
// display treatment. Types missing from this table get the
// informational default.
var eventTreatments = map[string]treatment{
	// Failures.
	"server_failed":              {"❌", ColorRed},
	"image_pull_failed":          {"❌", ColorRed},
	"key_value_unhealthy":        {"❌", ColorRed},
	"pipeline_minutes_exhausted": {"❌", ColorRed},
	"server_hardware_failure":    {"❌", ColorRed},

	// Warnings.
	"commit_ignored":               {"⚠️", ColorAmber},
	"maintenance_mode_enabled":     {"⚠️", ColorAmber},
	"maintenance_mode_uri_updated": {"⚠️", ColorAmber},

	// In progress.
	"autoscaling_started":            {"⏳", ColorGray},
	"build_started":                  {"⏳", ColorGray},
	"deploy_started":                 {"⏳", ColorGray},
	"cron_job_run_started":           {"⏳", ColorGray},
	"job_run_started":                {"⏳", ColorGray},
	"maintenance_started":            {"⏳", ColorGray},
	"zero_downtime_redeploy_started": {"⏳", ColorGray},

	// Completed or healthy again.
	"autoscaling_ended":            {"✅", ColorGreen},
	"build_ended":                  {"✅", ColorGreen},
	"deploy_ended":                 {"✅", ColorGreen},
	"cron_job_run_ended":           {"✅", ColorGreen},
	"job_run_ended":                {"✅", ColorGreen},
	"maintenance_ended":            {"✅", ColorGreen},
	"zero_downtime_redeploy_ended": {"✅", ColorGreen},
	"server_available":             {"✅", ColorGreen},
	"service_resumed":              {"✅", ColorGreen},

	"server_restarted":  {"🔄", ColorBlue},
	"service_suspended": {"⏸️", ColorAmber},
}

// Present maps an event type and optional status to its display
// treatment. A recognized status takes precedence over the event-type
// table; an unknown status is treated as absent.
func Present(eventType, status string) Presentation {
	label := Humanize(eventType)

	switch status {
	case "failed":
		return Presentation{Label: label + " Failed", Emoji: "❌", Color: ColorRed}
	case "canceled":
		return Presentation{Label: label + " Canceled", Emoji: "⚠️", Color: ColorAmber}
	case "succeeded":
		return Presentation{Label: label + " Succeeded", Emoji: "✅", Color: ColorGreen}
	}

	if t, ok := eventTreatments[eventType]; ok {
		return Presentation{Label: label, Emoji: t.emoji, Color: t.color}
	}
	return Presentation{Label: label, Emoji: "ℹ️", Color: ColorGray}
}

// Humanize turns an underscore-separated event type into a display
// label: words split on underscore, each with its first letter
// capitalized, joined by spaces.
func Humanize(eventType string) string {
	words := strings.Join(strings.Split(eventType, "_"), " ")
	// Casers are stateful, so one is built per call rather than shared.
	return cases.Title(language.BritishEnglish, cases.NoLower).String(words)
}
