// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package post

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

// dateFilterLayout is the accepted shape of the exact-day listing filter.
const dateFilterLayout = "2006-01-02"

// ListPosts returns a page of posts. A malformed Date filter is dropped
// with a warning rather than failing the request.
func (service *Service) ListPosts(context context.Context, filter Filter, limit, offset int) ([]*Post, int, error) {
	if filter.Date != "" {
		if _, err := time.Parse(dateFilterLayout, filter.Date); err != nil {
			service.logger.Warn("post date filter ignored", slog.String("date", filter.Date))
			filter.Date = ""
		}
	}

	return service.repo.ListPosts(context, filter, limit, offset)
}

func (service *Service) GetPost(context context.Context, id int) (*Post, error) {
	return service.repo.GetPost(context, id)
}

// ViewPost serves the public detail page: it loads the post and records the
// visit against the analytics counters.
func (service *Service) ViewPost(context context.Context, id int, visitorID string, referrer string) (*Post, error) {
	found, err := service.repo.GetPost(context, id)
	if err != nil {
		return nil, err
	}

	categoryName := category.FallbackName
	if len(found.Categories) > 0 {
		categoryName = found.Categories[0].Name
	}

	page := fmt.Sprintf("%s:%d", constants.ContentTypePost, found.ID)
	service.activity.RecordView(context, page, visitorID, constants.ContentTypePost, found.ID, found.Title, categoryName, referrer)

	return found, nil
}

func (service *Service) CreatePost(context context.Context, post *Post) error {
	if err := service.prepare(post); err != nil {
		return err
	}

	if post.PublishedAt.IsZero() {
		post.PublishedAt = time.Now()
	}

	if err := service.repo.CreatePost(context, post, post.CategoryIDs); err != nil {
		return err
	}

	service.logger.Info("post_created", slog.Int("post_id", post.ID), slog.String("title", post.Title))
	return nil
}

func (service *Service) UpdatePost(context context.Context, id int, post *Post) error {
	post.ID = id
	if err := service.prepare(post); err != nil {
		return err
	}

	if err := service.repo.UpdatePost(context, post, post.CategoryIDs); err != nil {
		return err
	}

	service.logger.Info("post_updated", slog.Int("post_id", post.ID))
	return nil
}

func (service *Service) DeletePost(context context.Context, id int) error {
	if err := service.repo.DeletePost(context, id); err != nil {
		return err
	}

	service.logger.Warn("post_deleted", slog.Int("post_id", id))
	return nil
}

// prepare validates a write payload and sanitizes the admin-entered HTML body.
func (service *Service) prepare(post *Post) error {
	if post.Language == "" {
		post.Language = constants.DefaultLanguage
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, post.Title).MaxLen(FieldTitle, post.Title, 200)
	validator.Required(FieldBody, post.Body)
	validator.OneOf(FieldLanguage, post.Language, constants.DefaultLanguage, constants.SecondaryLanguage)

	if err := validator.Err(); err != nil {
		return err
	}

	post.Body = sanitize.HTML(post.Body)
	return nil
}
