// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package mail

import (
	"context"
	"time"
)

// WelcomeEmail carries everything needed to render and address the
// provisioning welcome message.
type WelcomeEmail struct {
	To        string
	FirstName string
	Company   string
	SetupURL  string

	// TrialDays and TrialExpiresAt are included in the body only when a
	// trial was started.
	TrialDays      int
	TrialExpiresAt *time.Time
}

type MailerInterface interface {
	SendWelcome(ctx context.Context, email WelcomeEmail) error
}
