// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/guestpulse/account-service/cmd"
)

func main() {
	cmd.Execute()
}
