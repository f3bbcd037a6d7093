// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #1f2933;">
    <h2>Welcome to GuestPulse, {{.FirstName}}!</h2>
    <p>Your account for <strong>{{.Company}}</strong> is ready.</p>
    <p>Set your password to get started:</p>
    <p><a href="{{.SetupURL}}">Set up your password</a></p>
    <p>This link expires in 7 days.</p>
    {{- if .TrialExpiresAt}}
    <p>Your {{.TrialDays}}-day free trial runs until {{.TrialExpiresAt.Format "2 January 2006"}}.</p>
    {{- end}}
    <p>— The GuestPulse team</p>
  </body>
</html>
`))

func renderWelcome(email WelcomeEmail) (string, error) {
	var buf bytes.Buffer
	if err := welcomeTemplate.Execute(&buf, email); err != nil {
		return "", fmt.Errorf("failed to render welcome email: %w", err)
	}
	return buf.String(), nil
}
