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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"deploy_started", "Deploy Started"},
		{"server_failed", "Server Failed"},
		{"zero_downtime_redeploy_started", "Zero Downtime Redeploy Started"},
		{"restart", "Restart"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Humanize(tt.in), "Humanize(%q)", tt.in)
	}
}

func TestPresent_StatusOverridesType(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		status    string
		want      Presentation
	}{
		{
			name:      "failed status",
			eventType: "deploy_ended",
			status:    "failed",
			want:      Presentation{Label: "Deploy Ended Failed", Emoji: "❌", Color: ColorRed},
		},
		{
			name:      "canceled status",
			eventType: "build_ended",
			status:    "canceled",
			want:      Presentation{Label: "Build Ended Canceled", Emoji: "⚠️", Color: ColorAmber},
		},
		{
			name:      "succeeded status",
			eventType: "deploy_ended",
			status:    "succeeded",
			want:      Presentation{Label: "Deploy Ended Succeeded", Emoji: "✅", Color: ColorGreen},
		},
		{
			name:      "unrecognized status falls back to the type table",
			eventType: "deploy_started",
			status:    "in_progress",
			want:      Presentation{Label: "Deploy Started", Emoji: "⏳", Color: ColorGray},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Present(tt.eventType, tt.status))
		})
	}
}

func TestPresent_TypeTable(t *testing.T) {
	tests := []struct {
		eventType string
		emoji     string
		color     int
	}{
		{"server_failed", "❌", ColorRed},
		{"image_pull_failed", "❌", ColorRed},
		{"key_value_unhealthy", "❌", ColorRed},
		{"pipeline_minutes_exhausted", "❌", ColorRed},
		{"server_hardware_failure", "❌", ColorRed},
		{"commit_ignored", "⚠️", ColorAmber},
		{"maintenance_mode_enabled", "⚠️", ColorAmber},
		{"maintenance_mode_uri_updated", "⚠️", ColorAmber},
		{"autoscaling_started", "⏳", ColorGray},
		{"build_started", "⏳", ColorGray},
		{"deploy_started", "⏳", ColorGray},
		{"cron_job_run_started", "⏳", ColorGray},
		{"job_run_started", "⏳", ColorGray},
		{"maintenance_started", "⏳", ColorGray},
		{"zero_downtime_redeploy_started", "⏳", ColorGray},
		{"autoscaling_ended", "✅", ColorGreen},
		{"build_ended", "✅", ColorGreen},
		{"deploy_ended", "✅", ColorGreen},
		{"cron_job_run_ended", "✅", ColorGreen},
		{"job_run_ended", "✅", ColorGreen},
		{"maintenance_ended", "✅", ColorGreen},
		{"zero_downtime_redeploy_ended", "✅", ColorGreen},
		{"server_available", "✅", ColorGreen},
		{"service_resumed", "✅", ColorGreen},
		{"server_restarted", "🔄", ColorBlue},
		{"service_suspended", "⏸️", ColorAmber},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			got := Present(tt.eventType, "")
			assert.Equal(t, tt.emoji, got.Emoji)
			assert.Equal(t, tt.color, got.Color)
			assert.Equal(t, Humanize(tt.eventType), got.Label)
		})
	}
}

func TestPresent_GrayHourglassForDeployStarted(t *testing.T) {
	got := Present("deploy_started", "")
	assert.Equal(t, "⏳", got.Emoji)
	assert.Equal(t, 0x94a3b8, got.Color)
	assert.Equal(t, "Deploy Started", got.Label)
}

func TestPresent_UnknownType(t *testing.T) {
	got := Present("disk_resized", "")
	assert.Equal(t, Presentation{Label: "Disk Resized", Emoji: "ℹ️", Color: ColorGray}, got)
}

func TestPresent_Idempotent(t *testing.T) {
	for _, pair := range [][2]string{
		{"deploy_started", ""},
		{"server_failed", "failed"},
		{"something_new", "unusual"},
	} {
		first := Present(pair[0], pair[1])
		second := Present(pair[0], pair[1])
		assert.Equal(t, first, second, "Present(%q, %q) is not stable", pair[0], pair[1])
	}
}
