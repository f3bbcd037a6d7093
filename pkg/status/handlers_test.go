// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/guestpulse/account-service/internal/logging"
	"github.com/guestpulse/account-service/internal/tracing"
	"github.com/guestpulse/account-service/internal/version"
)

func TestAPI_Status(t *testing.T) {
	mux := chi.NewMux()
	NewAPI("account-service", tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body statusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("expected status ok, got %q", body.Status)
	}
	if body.BuildInfo.Name != "account-service" {
		t.Errorf("unexpected service name %q", body.BuildInfo.Name)
	}
	if body.BuildInfo.Version != version.Version {
		t.Errorf("unexpected version %q", body.BuildInfo.Version)
	}
}

func TestAPI_Version(t *testing.T) {
	mux := chi.NewMux()
	NewAPI("account-service", tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/version", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["version"] != version.Version {
		t.Errorf("unexpected version %q", body["version"])
	}
}
