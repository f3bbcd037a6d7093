// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package mail

import (
	"context"

	"github.com/guestpulse/account-service/internal/logging"
)

var _ MailerInterface = (*NoopMailer)(nil)

// NoopMailer logs instead of sending. Used when SMTP is not configured.
type NoopMailer struct {
	logger logging.LoggerInterface
}

func NewNoopMailer(logger logging.LoggerInterface) *NoopMailer {
	return &NoopMailer{logger: logger}
}

func (m *NoopMailer) SendWelcome(_ context.Context, email WelcomeEmail) error {
	m.logger.Infof("smtp disabled, skipping welcome email to %s (setup url %s)", email.To, email.SetupURL)
	return nil
}
