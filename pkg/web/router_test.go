// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/guestpulse/account-service/internal/logging"
	"github.com/guestpulse/account-service/internal/monitoring"
	"github.com/guestpulse/account-service/internal/tracing"
	"github.com/guestpulse/account-service/internal/types"
	"github.com/guestpulse/account-service/pkg/accounts"
	"github.com/guestpulse/account-service/pkg/authentication"
)

const validBody = `{"firstName":"Maria","lastName":"Santos","email":"maria@hotel.example","companyName":"Hotel Miramar"}`

func newRouterForTest(t *testing.T, adminAuthn *authentication.Middleware, setupSvc func(*accounts.MockServiceInterface)) http.Handler {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := accounts.NewMockServiceInterface(ctrl)
	if setupSvc != nil {
		setupSvc(mockSvc)
	}

	return NewRouter(mockSvc, adminAuthn, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestRouter_Routes(t *testing.T) {
	router := newRouterForTest(t, nil, func(mockSvc *accounts.MockServiceInterface) {
		mockSvc.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&accounts.ProvisionResult{
			Account:    &types.Account{ID: "account-1", Name: "Hotel Miramar"},
			User:       &types.User{ID: "user-1", Email: "maria@hotel.example"},
			Invitation: &types.Invitation{ID: "invitation-1"},
		}, nil)
	})

	testCases := []struct {
		name           string
		method         string
		target         string
		body           string
		expectedStatus int
	}{
		{name: "status", method: http.MethodGet, target: "/api/v1/status", expectedStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, target: "/api/v1/version", expectedStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, target: "/api/v1/metrics", expectedStatus: http.StatusOK},
		{name: "marketing posts", method: http.MethodGet, target: "/api/marketing/posts", expectedStatus: http.StatusOK},
		{name: "help articles", method: http.MethodGet, target: "/api/marketing/articles", expectedStatus: http.StatusOK},
		{name: "create account", method: http.MethodPost, target: "/api/admin/create-account", body: validBody, expectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tc.method, tc.target, nil)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newRouterForTest(t, nil, nil)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(method, "/api/admin/create-account", nil))

			if rec.Code != http.StatusMethodNotAllowed {
				t.Fatalf("expected 405, got %d", rec.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body["error"] != "Method not allowed" {
				t.Errorf("unexpected body: %v", body)
			}
		})
	}
}

func TestRouter_AdminAuthentication(t *testing.T) {
	adminAuthn := authentication.NewMiddleware(
		authentication.NewNoopVerifier(),
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	t.Run("missing token is rejected", func(t *testing.T) {
		router := newRouterForTest(t, adminAuthn, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/create-account", strings.NewReader(validBody))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("bearer token is accepted", func(t *testing.T) {
		router := newRouterForTest(t, adminAuthn, func(mockSvc *accounts.MockServiceInterface) {
			mockSvc.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&accounts.ProvisionResult{
				Account:    &types.Account{ID: "account-1", Name: "Hotel Miramar"},
				User:       &types.User{ID: "user-1", Email: "maria@hotel.example"},
				Invitation: &types.Invitation{ID: "invitation-1"},
			}, nil)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/admin/create-account", strings.NewReader(validBody))
		req.Header.Set("Authorization", "Bearer dev-token")
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		t.Run("marketing stays open", func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/marketing/posts", nil))
			if rec.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", rec.Code)
			}
		})
	})
}
