// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package authentication

import "context"

type contextKey struct{}

var subjectContextKey = contextKey{}

// WithSubject returns a new context carrying the authenticated subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey, subject)
}

// GetSubject retrieves the authenticated subject from the context.
// Returns an empty string and false if no subject is present.
func GetSubject(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectContextKey).(string)
	return s, ok
}
