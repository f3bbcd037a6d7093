// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package accounts

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/guestpulse/account-service/internal/logging"
	"github.com/guestpulse/account-service/internal/mail"
	"github.com/guestpulse/account-service/internal/monitoring"
	"github.com/guestpulse/account-service/internal/storage"
	"github.com/guestpulse/account-service/internal/tracing"
	"github.com/guestpulse/account-service/internal/types"
)

// ErrEmailExists is returned when the submitted email already belongs to
// a user, whether caught by the pre-check or by the unique index.
var ErrEmailExists = errors.New("email already exists")

const (
	// invitationTokenBytes of entropy, hex-encoded to 64 characters.
	invitationTokenBytes = 32

	welcomeEmailWarning = "welcome email could not be sent"
)

type Service struct {
	storage            StorageInterface
	tx                 TxRunnerInterface
	mailer             MailerInterface
	appBaseURL         string
	invitationLifetime time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	s StorageInterface,
	tx TxRunnerInterface,
	mailer MailerInterface,
	appBaseURL string,
	invitationLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:            s,
		tx:                 tx,
		mailer:             mailer,
		appBaseURL:         strings.TrimSuffix(appBaseURL, "/"),
		invitationLifetime: invitationLifetime,
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

// CreateAccount provisions a tenant: one account, one owner user and one
// password-setup invitation, created atomically, followed by a welcome
// email whose failure is non-fatal.
func (s *Service) CreateAccount(ctx context.Context, req CreateAccountRequest) (*ProvisionResult, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.CreateAccount")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Friendly pre-check. The unique index on lower(email) is the real
	// guarantee; concurrent submissions that both pass this check lose
	// on insert and surface the same conflict.
	if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}

	var trialExpiry *time.Time
	if req.StartTrial && req.TrialDays > 0 {
		t := time.Now().UTC().AddDate(0, 0, req.TrialDays)
		trialExpiry = &t
	}

	token, err := mintToken()
	if err != nil {
		return nil, err
	}

	result := new(ProvisionResult)

	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		account, err := s.storage.CreateAccount(txCtx, &types.Account{
			Name:           req.CompanyName,
			Phone:          req.Phone,
			TrialExpiresAt: trialExpiry,
		})
		if err != nil {
			return err
		}

		user, err := s.storage.CreateUser(txCtx, &types.User{
			AccountID: account.ID,
			Email:     email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Role:      types.RoleMaster,
		})
		if err != nil {
			return err
		}

		invitation, err := s.storage.CreateInvitation(txCtx, &types.Invitation{
			AccountID: account.ID,
			Email:     email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			VenueIDs:  []string{},
			Token:     token,
			ExpiresAt: time.Now().UTC().Add(s.invitationLifetime),
		})
		if err != nil {
			return err
		}

		result.Account = account
		result.User = user
		result.Invitation = invitation
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to provision account: %w", err)
	}

	s.logger.Security().AccountProvisioned(result.Account.ID, result.User.Email)

	welcome := mail.WelcomeEmail{
		To:        result.User.Email,
		FirstName: result.User.FirstName,
		Company:   result.Account.Name,
		SetupURL:  s.setupURL(token),
	}
	if trialExpiry != nil {
		welcome.TrialDays = req.TrialDays
		welcome.TrialExpiresAt = trialExpiry
	}

	if err := s.mailer.SendWelcome(ctx, welcome); err != nil {
		// Non-fatal: the account exists and the invitation stays valid,
		// the caller just has to resend the link.
		s.logger.Errorf("failed to send welcome email to %s: %v", result.User.Email, err)
		result.Warnings = append(result.Warnings, welcomeEmailWarning)
	}

	return result, nil
}

func (s *Service) setupURL(token string) string {
	return fmt.Sprintf("%s/set-password?token=%s", s.appBaseURL, url.QueryEscape(token))
}

func mintToken() (string, error) {
	buf := make([]byte, invitationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invitation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
