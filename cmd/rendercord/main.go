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

// Rendercord relays Render webhook events to a Discord channel.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/avelldt/rendercord/internal/config"
	"github.com/avelldt/rendercord/internal/discord"
	"github.com/avelldt/rendercord/internal/relay"
	"github.com/avelldt/rendercord/internal/render"
	"github.com/avelldt/rendercord/internal/webhook"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logCfg := zap.NewProductionConfig()
	if cfg.LogDevel {
		logCfg = zap.NewDevelopmentConfig()
	}
	log, err := logCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// The server still starts with incomplete configuration: its
	// contract is to answer 500 until the missing values appear.
	if missing := cfg.Missing(); len(missing) > 0 {
		log.Warn("configuration incomplete; webhook deliveries will be refused",
			zap.Strings("missing", missing))
	}

	client := render.NewClient(cfg.RenderAPIKey, render.WithBaseURL(cfg.RenderAPIURL))
	notifier := discord.NewNotifier(cfg.DiscordBotToken)
	pipeline := relay.New(client, notifier, cfg.DiscordChannelID, log)
	server := webhook.NewServer(cfg, pipeline, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		log.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}
