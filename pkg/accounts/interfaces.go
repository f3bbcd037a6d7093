// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package accounts

import (
	"context"

	"github.com/guestpulse/account-service/internal/mail"
	"github.com/guestpulse/account-service/internal/types"
)

type ServiceInterface interface {
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*ProvisionResult, error)
}

// StorageInterface is the subset of the storage layer used by
// provisioning.
type StorageInterface interface {
	CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
}

// TxRunnerInterface runs a function inside one transaction scope. It is
// satisfied by the db client.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type MailerInterface interface {
	SendWelcome(ctx context.Context, email mail.WelcomeEmail) error
}
