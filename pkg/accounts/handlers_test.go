// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/guestpulse/account-service/internal/types"
)

func TestAPI_CreateAccount(t *testing.T) {
	validBody := `{"firstName":"Maria","lastName":"Santos","email":"maria@hotel.example","companyName":"Hotel Miramar"}`

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatus int
		expectedError  string
		expectedFields []string
	}{
		{
			name: "success",
			body: validBody,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req CreateAccountRequest) (*ProvisionResult, error) {
						if req.Email != "maria@hotel.example" {
							t.Errorf("unexpected email %q", req.Email)
						}
						return &ProvisionResult{
							Account:    &types.Account{ID: "account-1", Name: req.CompanyName},
							User:       &types.User{ID: "user-1", Email: req.Email},
							Invitation: &types.Invitation{ID: "invitation-1"},
						}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "success with warning",
			body: validBody,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&ProvisionResult{
					Account:    &types.Account{ID: "account-1", Name: "Hotel Miramar"},
					User:       &types.User{ID: "user-1", Email: "maria@hotel.example"},
					Invitation: &types.Invitation{ID: "invitation-1"},
					Warnings:   []string{welcomeEmailWarning},
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed JSON",
			body:           `{"firstName":`,
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name:           "missing required fields",
			body:           `{"firstName":"Maria"}`,
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields",
			expectedFields: []string{"companyName", "email", "lastName"},
		},
		{
			name:           "invalid email format",
			body:           `{"firstName":"Maria","lastName":"Santos","email":"not-an-email","companyName":"Hotel Miramar"}`,
			setupMocks:     func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields",
			expectedFields: []string{"email"},
		},
		{
			name: "email already exists",
			body: validBody,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, ErrEmailExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Email already exists",
		},
		{
			name: "service error stays generic",
			body: validBody,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: connection refused"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to create account",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "accounts.API.createAccount").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockSvc, mockLogger)

			mux := chi.NewMux()
			api := NewAPI(mockSvc, mockTracer, mockMonitor, mockLogger)
			api.RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/create-account", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected JSON content type, got %q", ct)
			}

			if tc.expectedError != "" {
				var body errorResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if body.Error != tc.expectedError {
					t.Errorf("expected error %q, got %q", tc.expectedError, body.Error)
				}
				if tc.expectedFields != nil {
					got := append([]string{}, body.Fields...)
					sort.Strings(got)
					if len(got) != len(tc.expectedFields) {
						t.Fatalf("expected fields %v, got %v", tc.expectedFields, got)
					}
					for i, f := range tc.expectedFields {
						if got[i] != f {
							t.Errorf("expected fields %v, got %v", tc.expectedFields, got)
							break
						}
					}
				}
				return
			}

			var body createAccountResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if !body.Success {
				t.Error("expected success to be true")
			}
			if body.Account.ID != "account-1" || body.User.ID != "user-1" {
				t.Errorf("unexpected identifiers in body: %+v", body)
			}
			if tc.name == "success with warning" && len(body.Warnings) != 1 {
				t.Errorf("expected one warning, got %v", body.Warnings)
			}
			if tc.name == "success" && body.Warnings != nil {
				t.Errorf("expected warnings omitted, got %v", body.Warnings)
			}
		})
	}
}
