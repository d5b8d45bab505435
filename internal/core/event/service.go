// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/duongnk/eventide/internal/core/category"
	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/sanitize"
	"github.com/duongnk/eventide/internal/platform/validate"
)

// dateFilterLayout is the accepted shape of the exact-day listing filter.
const dateFilterLayout = "2006-01-02"

// ActivityRecorder receives view signals from the public detail endpoint.
// Recording is best-effort; failures never surface to the visitor.
type ActivityRecorder interface {
	RecordView(context context.Context, page string, visitorID string, contentType string, contentID int, title string, categoryName string, referrer string)
}

type Service struct {
	repo     Repository
	activity ActivityRecorder
	logger   *slog.Logger
}

func NewService(repo Repository, activity ActivityRecorder, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		activity: activity,
		logger:   logger,
	}
}

// ListEvents returns a page of events. A malformed Date filter is dropped
// with a warning rather than failing the request.
func (service *Service) ListEvents(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error) {
	if filter.Date != "" {
		if _, err := time.Parse(dateFilterLayout, filter.Date); err != nil {
			service.logger.Warn("event date filter ignored", slog.String("date", filter.Date))
			filter.Date = ""
		}
	}

	return service.repo.ListEvents(context, filter, limit, offset)
}

func (service *Service) GetEvent(context context.Context, id int) (*Event, error) {
	return service.repo.GetEvent(context, id)
}

// ViewEvent serves the public detail page: it loads the event and records
// the visit against the analytics counters.
func (service *Service) ViewEvent(context context.Context, id int, visitorID string, referrer string) (*Event, error) {
	found, err := service.repo.GetEvent(context, id)
	if err != nil {
		return nil, err
	}

	categoryName := category.FallbackName
	if len(found.Categories) > 0 {
		categoryName = found.Categories[0].Name
	}

	page := fmt.Sprintf("%s:%d", constants.ContentTypeEvent, found.ID)
	service.activity.RecordView(context, page, visitorID, constants.ContentTypeEvent, found.ID, found.Title, categoryName, referrer)

	return found, nil
}

func (service *Service) CreateEvent(context context.Context, event *Event) error {
	if err := service.prepare(event); err != nil {
		return err
	}

	if err := service.repo.CreateEvent(context, event, event.CategoryIDs); err != nil {
		return err
	}

	service.logger.Info("event_created", slog.Int("event_id", event.ID), slog.String("title", event.Title))
	return nil
}

func (service *Service) UpdateEvent(context context.Context, id int, event *Event) error {
	event.ID = id
	if err := service.prepare(event); err != nil {
		return err
	}

	if err := service.repo.UpdateEvent(context, event, event.CategoryIDs); err != nil {
		return err
	}

	service.logger.Info("event_updated", slog.Int("event_id", event.ID))
	return nil
}

func (service *Service) DeleteEvent(context context.Context, id int) error {
	if err := service.repo.DeleteEvent(context, id); err != nil {
		return err
	}

	service.logger.Warn("event_deleted", slog.Int("event_id", id))
	return nil
}

// prepare validates a write payload and sanitizes admin-entered HTML.
func (service *Service) prepare(event *Event) error {
	if event.Language == "" {
		event.Language = constants.DefaultLanguage
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, event.Title).MaxLen(FieldTitle, event.Title, 200)
	validator.Required(FieldDescription, event.Description)
	validator.Custom(FieldEventDate, event.EventDate.IsZero(), "event date is required")
	validator.OneOf(FieldLanguage, event.Language, constants.DefaultLanguage, constants.SecondaryLanguage)

	if err := validator.Err(); err != nil {
		return err
	}

	event.Description = sanitize.HTML(event.Description)
	return nil
}
