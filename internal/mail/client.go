// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/guestpulse/account-service/internal/logging"
	"github.com/guestpulse/account-service/internal/monitoring"
	"github.com/guestpulse/account-service/internal/tracing"
)

const welcomeSubject = "Welcome to GuestPulse"

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var _ MailerInterface = (*Client)(nil)

type Client struct {
	client *gomail.Client
	from   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	client, err := gomail.NewClient(
		cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &Client{
		client:  client,
		from:    cfg.From,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func (c *Client) SendWelcome(ctx context.Context, email WelcomeEmail) error {
	ctx, span := c.tracer.Start(ctx, "mail.Client.SendWelcome")
	defer span.End()

	body, err := renderWelcome(email)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(welcomeSubject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := c.client.DialAndSendWithContext(ctx, msg); err != nil {
		c.setAvailability(0)
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	c.setAvailability(1)
	return nil
}

func (c *Client) setAvailability(v float64) {
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "smtp"}, v); err != nil {
		c.logger.Errorf("failed to set smtp availability metric: %v", err)
	}
}
