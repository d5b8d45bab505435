// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/duongnk/eventide/internal/platform/mail"
	"github.com/duongnk/eventide/internal/platform/validate"
)

type Service struct {
	repo   Repository
	mailer *mail.Mailer
	logger *slog.Logger
}

func NewService(repo Repository, mailer *mail.Mailer, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

// Submit validates and stores a contact form submission, then notifies the
// configured address. Notification is best-effort and never fails the request.
func (service *Service) Submit(context context.Context, message *Message) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, message.Name).MaxLen(FieldName, message.Name, 200)
	validator.Required(FieldEmail, message.Email).Email(FieldEmail, message.Email)
	validator.Required(FieldMessage, message.Message).MaxLen(FieldMessage, message.Message, 5000)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateMessage(context, message); err != nil {
		return err
	}

	service.logger.Info("contact_message_received", slog.Int("message_id", message.ID))

	subject := fmt.Sprintf("New contact message from %s", message.Name)
	body := fmt.Sprintf("From: %s <%s>\r\n\r\n%s", message.Name, message.Email, message.Message)
	go service.mailer.Notify(subject, body)

	return nil
}

func (service *Service) ListMessages(context context.Context, limit, offset int) ([]*Message, int, error) {
	return service.repo.ListMessages(context, limit, offset)
}

func (service *Service) DeleteMessage(context context.Context, id int) error {
	if err := service.repo.DeleteMessage(context, id); err != nil {
		return err
	}
	service.logger.Warn("contact_message_deleted", slog.Int("message_id", id))
	return nil
}
