// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package category

import (
	"context"
	"log/slog"

	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListCategories returns categories, optionally scoped to one content type.
// An empty contentType returns every category.
func (service *Service) ListCategories(context context.Context, contentType string) ([]*Category, error) {
	return service.repo.ListCategories(context, contentType)
}

func (service *Service) CreateCategory(context context.Context, category *Category) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, category.Name).MaxLen(FieldName, category.Name, 100)
	validator.OneOf(FieldContentType, category.ContentType, constants.ContentTypeEvent, constants.ContentTypePost)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateCategory(context, category); err != nil {
		return err
	}

	service.logger.Info("category_created",
		slog.String("name", category.Name),
		slog.String("content_type", category.ContentType),
	)
	return nil
}

func (service *Service) DeleteCategory(context context.Context, id int) error {
	if err := service.repo.DeleteCategory(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.Int("category_id", id))
	return nil
}
