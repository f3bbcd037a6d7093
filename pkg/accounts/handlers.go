// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package accounts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/guestpulse/account-service/internal/logging"
	"github.com/guestpulse/account-service/internal/monitoring"
	"github.com/guestpulse/account-service/internal/tracing"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/admin/create-account", a.createAccount)
}

func (a *API) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.createAccount")
	defer span.End()

	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.jsonError(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if err := a.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, ve := range verrs {
				fields = append(fields, jsonFieldName(ve.Field()))
			}
			a.jsonError(w, http.StatusBadRequest, errorResponse{Error: "Missing required fields", Fields: fields})
			return
		}
		a.jsonError(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	result, err := a.service.CreateAccount(ctx, req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			a.jsonError(w, http.StatusBadRequest, errorResponse{Error: "Email already exists"})
			return
		}
		// Underlying cause stays server-side.
		a.logger.Errorf("failed to create account: %v", err)
		a.jsonError(w, http.StatusInternalServerError, errorResponse{Error: "Failed to create account"})
		return
	}

	a.writeJSON(w, http.StatusOK, createAccountResponse{
		Success: true,
		Message: "Account created",
		Account: accountSummary{
			ID:   result.Account.ID,
			Name: result.Account.Name,
		},
		User: userSummary{
			ID:    result.User.ID,
			Email: result.User.Email,
		},
		Warnings: result.Warnings,
	})
}

func (a *API) jsonError(w http.ResponseWriter, status int, body errorResponse) {
	a.writeJSON(w, status, body)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

// jsonFieldName maps struct field names from validation errors to their
// wire names.
func jsonFieldName(field string) string {
	switch field {
	case "FirstName":
		return "firstName"
	case "LastName":
		return "lastName"
	case "Email":
		return "email"
	case "CompanyName":
		return "companyName"
	default:
		return field
	}
}
