// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/guestpulse/account-service/internal/logging"
	"github.com/guestpulse/account-service/internal/monitoring"
	"github.com/guestpulse/account-service/internal/tracing"
	"github.com/guestpulse/account-service/pkg/accounts"
	"github.com/guestpulse/account-service/pkg/authentication"
	"github.com/guestpulse/account-service/pkg/content"
	"github.com/guestpulse/account-service/pkg/metrics"
	"github.com/guestpulse/account-service/pkg/status"
)

// NewRouter assembles the public mux. adminAuthn guards the admin
// surface and may be nil when authentication is disabled.
func NewRouter(
	accountsService accounts.ServiceInterface,
	adminAuthn *authentication.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		if err := json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed"}); err != nil {
			logger.Errorf("failed to encode response: %v", err)
		}
	})

	metrics.NewAPI().RegisterEndpoints(router)
	status.NewAPI(monitor.GetService(), tracer, logger).RegisterEndpoints(router)
	content.NewAPI(content.NewCatalogue(), tracer, logger).RegisterEndpoints(router)

	router.Group(func(admin chi.Router) {
		if adminAuthn != nil {
			admin.Use(adminAuthn.Authenticate())
		}
		accounts.NewAPI(accountsService, tracer, monitor, logger).RegisterEndpoints(admin)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
