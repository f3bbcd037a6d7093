// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package accounts

import (
	"github.com/guestpulse/account-service/internal/types"
)

type CreateAccountRequest struct {
	FirstName   string  `json:"firstName" validate:"required"`
	LastName    string  `json:"lastName" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	CompanyName string  `json:"companyName" validate:"required"`
	Phone       *string `json:"phone,omitempty"`
	StartTrial  bool    `json:"startTrial,omitempty"`
	TrialDays   int     `json:"trialDays,omitempty"`
}

// ProvisionResult is what a successful provisioning run produced.
type ProvisionResult struct {
	Account    *types.Account
	User       *types.User
	Invitation *types.Invitation

	// Warnings records non-fatal failures (a welcome email that could
	// not be sent) that do not affect the outcome.
	Warnings []string
}

type accountSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type userSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type createAccountResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Account  accountSummary `json:"account"`
	User     userSummary    `json:"user"`
	Warnings []string       `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}
