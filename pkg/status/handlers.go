// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package status

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/guestpulse/account-service/internal/logging"
	"github.com/guestpulse/account-service/internal/tracing"
	"github.com/guestpulse/account-service/internal/version"
)

type buildInfo struct {
	Version string `json:"version"`
	Name    string `json:"name"`
}

type statusResponse struct {
	Status    string    `json:"status"`
	BuildInfo buildInfo `json:"buildInfo"`
}

type API struct {
	service string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v1/status", a.status)
	mux.Get("/api/v1/version", a.version)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.status")
	defer span.End()

	a.writeJSON(w, statusResponse{
		Status: "ok",
		BuildInfo: buildInfo{
			Version: version.Version,
			Name:    a.service,
		},
	})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	a.writeJSON(w, map[string]string{"version": version.Version})
}

func (a *API) writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
