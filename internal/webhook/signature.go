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
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// signatureTolerance bounds how far a delivery timestamp may drift
	// from the current time before it is rejected as a replay.
	signatureTolerance = 5 * time.Minute

	// secretPrefix is the conventional prefix on signing secrets. It is
	// not part of the key material.
	secretPrefix = "whsec_"

	signatureVersion = "v1"
)

// VerificationError reports a delivery that failed authentication:
// missing headers, a stale timestamp, or a signature mismatch. The
// handler maps it to 400; any other error from the verifier is an
// operational fault and maps to 500.
type VerificationError struct {
	Reason string
}

func (e *VerificationError) Error() string {
	return "webhook verification failed: " + e.Reason
}

// SignatureHeaders holds the three headers of the signed-webhook
// scheme. Absent headers are empty strings.
type SignatureHeaders struct {
	ID        string
	Timestamp string
	Signature string
}

// Verifier checks signed-webhook deliveries against a shared secret.
type Verifier struct {
	key []byte
}

// NewVerifier derives the HMAC key from the shared secret. The secret
// may carry the standard "whsec_" prefix; the remainder must be
// base64.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("webhook secret is empty")
	}
	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(secret, secretPrefix))
	if err != nil {
		return nil, fmt.Errorf("webhook secret is not valid base64: %w", err)
	}
	return &Verifier{key: key}, nil
}

// Verify authenticates a delivery. The body must be the raw request
// bytes exactly as received; verifying a re-serialized body is not
// equivalent.
//
// The signed content is "{id}.{timestamp}.{body}". The signature
// header may list several space-separated "{version},{signature}"
// entries; the delivery is accepted when any v1 entry matches under a
// constant-time comparison.
func (v *Verifier) Verify(body []byte, hdr SignatureHeaders, now time.Time) error {
	if hdr.ID == "" || hdr.Timestamp == "" || hdr.Signature == "" {
		return &VerificationError{Reason: "missing signature headers"}
	}

	ts, err := strconv.ParseInt(hdr.Timestamp, 10, 64)
	if err != nil {
		return &VerificationError{Reason: "malformed timestamp header"}
	}
	if drift := now.Sub(time.Unix(ts, 0)); drift > signatureTolerance || drift < -signatureTolerance {
		return &VerificationError{Reason: "timestamp outside tolerance window"}
	}

	mac := hmac.New(sha256.New, v.key)
	mac.Write([]byte(hdr.ID))
	mac.Write([]byte("."))
	mac.Write([]byte(hdr.Timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, entry := range strings.Fields(hdr.Signature) {
		version, sig, ok := strings.Cut(entry, ",")
		if !ok || version != signatureVersion {
			continue
		}
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}

	return &VerificationError{Reason: "no matching signature"}
}
