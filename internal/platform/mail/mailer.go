// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

/*
Package mail sends transactional notifications over SMTP.

Today it carries exactly one message type: the "new contact message" alert to
the site operators. Sending is best-effort: a mail failure must never fail
the request that triggered it.
*/
package mail

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Mailer sends plain-text notification emails through a single SMTP relay.
//
// A nil *Mailer is valid and silently drops messages; construction returns
// nil when no SMTP host is configured.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	to       string
	logger   *slog.Logger
}

// NewMailer returns a configured Mailer, or nil when host or recipient is empty.
func NewMailer(host, port, username, password, to string, logger *slog.Logger) *Mailer {
	if host == "" || to == "" {
		logger.Info("mailer disabled: no SMTP host or contact recipient configured")
		return nil
	}
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		to:       to,
		logger:   logger,
	}
}

// Notify sends a plain-text email with the given subject and body.
//
// Errors are logged, never returned: notification mail is advisory.
func (mailer *Mailer) Notify(subject, body string) {
	if mailer == nil {
		return
	}

	addr := mailer.host + ":" + mailer.port
	from := mailer.username
	if from == "" {
		from = "noreply@eventide.app"
	}

	var message strings.Builder
	message.WriteString(fmt.Sprintf("From: %s\r\n", from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", mailer.to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	message.WriteString("\r\n")
	message.WriteString(body)

	var auth smtp.Auth
	if mailer.username != "" {
		auth = smtp.PlainAuth("", mailer.username, mailer.password, mailer.host)
	}

	if err := smtp.SendMail(addr, auth, from, []string{mailer.to}, []byte(message.String())); err != nil {
		mailer.logger.Error("contact_notification_failed",
			slog.String("smtp_host", mailer.host),
			slog.Any("error", err),
		)
	}
}
