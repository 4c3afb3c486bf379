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

// Package relay runs the post-acknowledgement half of a webhook
// delivery: fetch supplementary data, compose the message, post it to
// the channel. By the time the pipeline runs the sender has already
// received its 200, so every failure here is logged and swallowed.
package relay

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avelldt/rendercord/internal/discord"
	"github.com/avelldt/rendercord/internal/message"
	"github.com/avelldt/rendercord/internal/render"
	"github.com/avelldt/rendercord/internal/webhook"
)

// Notifier posts a composed message to a channel.
type Notifier interface {
	Post(ctx context.Context, channelID string, msg *discord.Message) error
}

// Pipeline turns accepted webhook payloads into channel notifications.
type Pipeline struct {
	render    render.Client
	notifier  Notifier
	channelID string
	log       *zap.Logger
}

// New creates a pipeline posting to the given channel.
func New(client render.Client, notifier Notifier, channelID string, log *zap.Logger) *Pipeline {
	return &Pipeline{
		render:    client,
		notifier:  notifier,
		channelID: channelID,
		log:       log,
	}
}

// Process handles one accepted delivery. It never returns an error and
// contains any panic from the steps below; the acknowledgement is
// already on the wire and nothing can be reported back to the sender.
func (p *Pipeline) Process(ctx context.Context, runID string, payload *webhook.Payload) {
	log := p.log.With(zap.String("run", runID), zap.String("event", payload.Type))
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic in notification pipeline", zap.Any("panic", r))
		}
	}()

	svc, evt := p.fetch(ctx, log, payload)

	msg := message.Build(payload, svc, evt)
	if err := p.notifier.Post(ctx, p.channelID, msg); err != nil {
		log.Error("failed to post notification", zap.Error(err))
		return
	}

	log.Info("notification posted", zap.String("service", payload.Data.ServiceID))
}

// fetch loads the service and event records concurrently. Both are
// best-effort: a failure logs, leaves the corresponding result nil,
// and does not interrupt the other fetch.
func (p *Pipeline) fetch(ctx context.Context, log *zap.Logger, payload *webhook.Payload) (*render.Service, *render.Event) {
	var (
		svc *render.Service
		evt *render.Event
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if payload.Data.ServiceID == "" {
			return nil
		}
		s, err := p.render.GetService(ctx, payload.Data.ServiceID)
		if err != nil {
			log.Warn("service fetch failed", zap.String("serviceId", payload.Data.ServiceID), zap.Error(err))
			return nil
		}
		svc = s
		return nil
	})
	g.Go(func() error {
		if payload.Data.ID == "" {
			return nil
		}
		e, err := p.render.GetEvent(ctx, payload.Data.ID)
		if err != nil {
			log.Warn("event fetch failed", zap.String("eventId", payload.Data.ID), zap.Error(err))
			return nil
		}
		evt = e
		return nil
	})
	// Both closures swallow their own errors, so Wait only synchronizes.
	_ = g.Wait()

	return svc, evt
}
