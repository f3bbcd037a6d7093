// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package mail

import (
	"strings"
	"testing"
	"time"
)

func TestRenderWelcome(t *testing.T) {
	expiry := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		email       WelcomeEmail
		wantContain []string
		wantAbsent  []string
	}{
		{
			name: "with trial",
			email: WelcomeEmail{
				To:             "jane@example.com",
				FirstName:      "Jane",
				Company:        "Acme Bistro",
				SetupURL:       "https://app.guestpulse.io/set-password?token=abc",
				TrialDays:      14,
				TrialExpiresAt: &expiry,
			},
			wantContain: []string{
				"Jane",
				"Acme Bistro",
				"https://app.guestpulse.io/set-password?token=abc",
				"14-day free trial",
				"14 September 2026",
			},
		},
		{
			name: "without trial",
			email: WelcomeEmail{
				To:        "jane@example.com",
				FirstName: "Jane",
				Company:   "Acme Bistro",
				SetupURL:  "https://app.guestpulse.io/set-password?token=abc",
			},
			wantContain: []string{"Jane", "Acme Bistro"},
			wantAbsent:  []string{"free trial"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := renderWelcome(tt.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(body, want) {
					t.Errorf("expected body to contain %q", want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(body, absent) {
					t.Errorf("expected body not to contain %q", absent)
				}
			}
		})
	}
}
