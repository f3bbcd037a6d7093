// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package metrics

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// API exposes the prometheus scrape endpoint on the shared mux.
type API struct{}

func NewAPI() *API {
	return &API{}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Handle("/api/v1/metrics", promhttp.Handler())
}
