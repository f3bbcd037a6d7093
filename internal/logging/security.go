// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger emits structured audit events on a dedicated channel so
// they can be routed separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.Named("security")}
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(subject, policy string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_fail"),
		zap.String("subject", subject),
		zap.String("policy", policy),
	)
}

func (s *SecurityLogger) AccountProvisioned(accountID, email string) {
	s.l.Info("account provisioned",
		zap.String("event", "account_provisioned"),
		zap.String("account_id", accountID),
		zap.String("email", email),
	)
}
