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

// Package config sources the relay's configuration from the
// environment.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the process configuration. The four credential values are
// required; the webhook handler refuses deliveries with 500 while any
// of them is missing.
type Config struct {
	Host     string `envconfig:"HOST" default:"0.0.0.0"`
	Port     int    `envconfig:"PORT" default:"8080"`
	LogDevel bool   `envconfig:"LOG_DEVEL" default:"false"`

	RenderWebhookSecret string `envconfig:"RENDER_WEBHOOK_SECRET"`
	RenderAPIKey        string `envconfig:"RENDER_API_KEY"`
	RenderAPIURL        string `envconfig:"RENDER_API_URL" default:"https://api.render.com/v1"`
	DiscordBotToken     string `envconfig:"DISCORD_BOT_TOKEN"`
	DiscordChannelID    string `envconfig:"DISCORD_CHANNEL_ID"`
}

// Load reads configuration from the environment, merging in a local
// .env file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return cfg, nil
}

// Missing lists the names of required values that are absent.
func (c *Config) Missing() []string {
	var missing []string
	for _, v := range []struct{ name, value string }{
		{"RENDER_WEBHOOK_SECRET", c.RenderWebhookSecret},
		{"RENDER_API_KEY", c.RenderAPIKey},
		{"DISCORD_BOT_TOKEN", c.DiscordBotToken},
		{"DISCORD_CHANNEL_ID", c.DiscordChannelID},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}
