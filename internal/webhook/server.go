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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/avelldt/rendercord/internal/config"
)

// Dispatcher receives parsed payloads for asynchronous processing
// after the delivery has been acknowledged. Implementations must not
// let failures escape: the response is already on the wire.
type Dispatcher interface {
	Process(ctx context.Context, runID string, payload *Payload)
}

// Server receives signed Render webhook deliveries.
type Server struct {
	cfg        *config.Config
	dispatcher Dispatcher
	log        *zap.Logger
	server     *http.Server
}

// NewServer creates a new webhook server.
func NewServer(cfg *config.Config, dispatcher Dispatcher, log *zap.Logger) *Server {
	return &Server{
		cfg:        cfg,
		dispatcher: dispatcher,
		log:        log,
	}
}

// Routes builds the HTTP handler. The webhook route is method-scoped
// so a wrong method answers 405 while an unknown path answers 404,
// both with empty bodies.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/webhook", s.handleWebhook).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
	return r
}

// Start starts the webhook server and blocks until the context is
// cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler: s.Routes(),
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("starting webhook server", zap.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.log.Info("shutting down webhook server")
	return s.server.Shutdown(ctx)
}

// handleHealth handles health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleWebhook processes one delivery: configuration check, raw body
// read, signature verification, JSON parse, then acknowledge and hand
// off. Every checkpoint failure short-circuits with its mapped status
// and an empty body.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if missing := s.cfg.Missing(); len(missing) > 0 {
		s.log.Error("refusing delivery: configuration incomplete", zap.Strings("missing", missing))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.log.Error("failed to read request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	verifier, err := NewVerifier(s.cfg.RenderWebhookSecret)
	if err != nil {
		s.log.Error("webhook secret is unusable", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	hdr := SignatureHeaders{
		ID:        r.Header.Get("webhook-id"),
		Timestamp: r.Header.Get("webhook-timestamp"),
		Signature: r.Header.Get("webhook-signature"),
	}
	if err := verifier.Verify(body, hdr, time.Now()); err != nil {
		var verr *VerificationError
		if errors.As(err, &verr) {
			s.log.Info("rejected delivery", zap.String("id", hdr.ID), zap.String("reason", verr.Reason))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.log.Error("signature verification errored", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		s.log.Info("delivery body is not valid JSON", zap.String("id", hdr.ID), zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Acknowledge before doing any downstream work. The run ID ties the
	// detached pipeline's log lines back to this delivery.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("{}"))

	runID := uuid.NewString()
	s.log.Info("accepted delivery",
		zap.String("id", hdr.ID),
		zap.String("run", runID),
		zap.String("event", payload.Type))

	go s.dispatcher.Process(context.Background(), runID, &payload)
}
