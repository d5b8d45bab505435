// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package media

import (
	"context"
	"io"
	"log/slog"

	"github.com/duongnk/eventide/internal/platform/apperr"
	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/upload"
	"github.com/duongnk/eventide/internal/platform/validate"
)

type Service struct {
	repo   Repository
	files  *upload.Store
	logger *slog.Logger
}

func NewService(repo Repository, files *upload.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		files:  files,
		logger: logger,
	}
}

func (service *Service) ListMedia(context context.Context, filter Filter, limit, offset int) ([]*Media, int, error) {
	return service.repo.ListMedia(context, filter, limit, offset)
}

func (service *Service) ListGallery(context context.Context, language string, limit, offset int) ([]*Media, int, error) {
	return service.repo.ListGallery(context, language, limit, offset)
}

/*
Upload persists an incoming file and records its metadata row.

Description: The media type is derived from the filename extension; files
with an unrecognized extension are rejected before anything touches disk.
If the metadata insert fails the stored file is removed again.

Parameters:
  - originalName: the client-supplied filename.
  - reader: the file contents.
  - linkedType, linkedID: optional owning entity.

Returns:
  - *Media: the stored asset including its public URL.
  - error: validation failures or storage errors.
*/
func (service *Service) Upload(context context.Context, originalName string, reader io.Reader, linkedType *string, linkedID *int) (*Media, error) {
	mediaType, allowed := Classify(originalName)
	if !allowed {
		return nil, apperr.Unprocessable("Unsupported file type")
	}

	if linkedType != nil {
		validator := &validate.Validator{}
		validator.OneOf(FieldLinkedType, *linkedType, constants.ContentTypeEvent, constants.ContentTypePost)
		if err := validator.Err(); err != nil {
			return nil, err
		}
	}

	filename, err := service.files.Save(originalName, reader)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	asset := &Media{
		Filename:   filename,
		MediaType:  mediaType,
		LinkedType: linkedType,
		LinkedID:   linkedID,
	}

	if err := service.repo.CreateMedia(context, asset); err != nil {
		if cleanupErr := service.files.Delete(filename); cleanupErr != nil {
			service.logger.Error("orphaned upload cleanup failed", "error", cleanupErr, "filename", filename)
		}
		return nil, err
	}

	asset.URL = PublicURL(asset.Filename)

	service.logger.Info("media_uploaded",
		slog.Int("media_id", asset.ID),
		slog.String("filename", asset.Filename),
		slog.String("media_type", asset.MediaType),
	)
	return asset, nil
}

// Delete removes the file from the upload directory, then the metadata row.
// A missing file is tolerated so stale rows can always be cleared.
func (service *Service) Delete(context context.Context, id int) error {
	asset, err := service.repo.GetMedia(context, id)
	if err != nil {
		return err
	}

	if err := service.files.Delete(asset.Filename); err != nil {
		service.logger.Warn("media file removal failed", "error", err, "filename", asset.Filename)
	}

	if err := service.repo.DeleteMedia(context, id); err != nil {
		return err
	}

	service.logger.Warn("media_deleted", slog.Int("media_id", id))
	return nil
}
