// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/guestpulse/account-service/internal/db"
	"github.com/guestpulse/account-service/internal/logging"
	"github.com/guestpulse/account-service/internal/monitoring"
	"github.com/guestpulse/account-service/internal/tracing"
	"github.com/guestpulse/account-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAccount")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account ID: %w", err)
	}

	var created types.Account
	err = s.db.Statement(ctx).
		Insert("accounts").
		Columns("id", "name", "phone", "is_paid", "is_demo", "trial_expires_at").
		Values(id.String(), a.Name, a.Phone, a.IsPaid, a.IsDemo, a.TrialExpiresAt).
		Suffix("RETURNING id, name, phone, is_paid, is_demo, trial_expires_at, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Phone, &created.IsPaid, &created.IsDemo, &created.TrialExpiresAt, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetAccountByID(ctx context.Context, id string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountByID")
	defer span.End()

	var a types.Account
	err := s.db.Statement(ctx).
		Select("id", "name", "phone", "is_paid", "is_demo", "trial_expires_at", "created_at").
		From("accounts").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.Name, &a.Phone, &a.IsPaid, &a.IsDemo, &a.TrialExpiresAt, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &a, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	var created types.User
	err = s.db.Statement(ctx).
		Insert("users").
		Columns("id", "account_id", "email", "first_name", "last_name", "role").
		Values(id.String(), u.AccountID, strings.ToLower(u.Email), u.FirstName, u.LastName, u.Role).
		Suffix("RETURNING id, account_id, email, first_name, last_name, role, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.AccountID, &created.Email, &created.FirstName, &created.LastName, &created.Role, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "user email")
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

// GetUserByEmail matches case-insensitively against the stored email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "account_id", "email", "first_name", "last_name", "role", "created_at").
		From("users").
		Where(sq.Eq{"lower(email)": strings.ToLower(email)}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.AccountID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	venueIDs := inv.VenueIDs
	if venueIDs == nil {
		venueIDs = []string{}
	}
	venueJSON, err := json.Marshal(venueIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode venue list: %w", err)
	}

	var created types.Invitation
	var createdVenues []byte
	err = s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "account_id", "email", "first_name", "last_name", "invited_by", "venue_ids", "token", "expires_at", "status").
		Values(id.String(), inv.AccountID, strings.ToLower(inv.Email), inv.FirstName, inv.LastName, inv.InvitedBy, venueJSON, inv.Token, inv.ExpiresAt, types.InvitationStatusPending).
		Suffix("RETURNING id, account_id, email, first_name, last_name, invited_by, venue_ids, token, expires_at, status, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.AccountID, &created.Email, &created.FirstName, &created.LastName, &created.InvitedBy, &createdVenues, &created.Token, &created.ExpiresAt, &created.Status, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "invitation token")
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invitation: %w", err)
	}

	if err := json.Unmarshal(createdVenues, &created.VenueIDs); err != nil {
		return nil, fmt.Errorf("failed to decode venue list: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetInvitationByToken(ctx context.Context, token string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationByToken")
	defer span.End()

	var inv types.Invitation
	var venues []byte
	err := s.db.Statement(ctx).
		Select("id", "account_id", "email", "first_name", "last_name", "invited_by", "venue_ids", "token", "expires_at", "status", "created_at").
		From("invitations").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&inv.ID, &inv.AccountID, &inv.Email, &inv.FirstName, &inv.LastName, &inv.InvitedBy, &venues, &inv.Token, &inv.ExpiresAt, &inv.Status, &inv.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	if err := json.Unmarshal(venues, &inv.VenueIDs); err != nil {
		return nil, fmt.Errorf("failed to decode venue list: %w", err)
	}

	return &inv, nil
}
