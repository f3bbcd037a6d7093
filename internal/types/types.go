// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package types

import (
	"time"
)

// RoleMaster is the owner-level role assigned to users created through
// account provisioning.
const RoleMaster = "master"

// InvitationStatusPending is the initial status of a freshly minted
// invitation. Provisioning never transitions it; the password-setup flow
// does.
const InvitationStatusPending = "pending"

type Account struct {
	ID             string     `db:"id"`
	Name           string     `db:"name"`
	Phone          *string    `db:"phone"`
	IsPaid         bool       `db:"is_paid"`
	IsDemo         bool       `db:"is_demo"`
	TrialExpiresAt *time.Time `db:"trial_expires_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

type User struct {
	ID        string    `db:"id"`
	AccountID string    `db:"account_id"`
	Email     string    `db:"email"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type Invitation struct {
	ID        string    `db:"id"`
	AccountID string    `db:"account_id"`
	Email     string    `db:"email"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	InvitedBy *string   `db:"invited_by"`
	VenueIDs  []string  `db:"venue_ids"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
