// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is set at build time via -ldflags.
var Version = "dev"
