// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package language

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/duongnk/eventide/internal/platform/apperr"
	"github.com/duongnk/eventide/internal/platform/constants"
)

type Service struct {
	sessions SessionRepository
	logger   *slog.Logger
}

func NewService(sessions SessionRepository, logger *slog.Logger) *Service {
	return &Service{
		sessions: sessions,
		logger:   logger,
	}
}

// Current returns the visitor's stored display language, falling back to the
// platform default when no preference exists.
func (service *Service) Current(context context.Context, visitorID string) string {
	code, err := service.sessions.Get(context, visitorID)
	if err != nil {
		service.logger.Warn("visitor language lookup failed", "error", err, "visitor_id", visitorID)
		return constants.DefaultLanguage
	}
	if code == "" {
		return constants.DefaultLanguage
	}
	return Normalize(code)
}

// Choose stores a visitor's language preference and returns the stored code.
func (service *Service) Choose(context context.Context, visitorID string, code string) (string, error) {
	if !IsSupported(code) {
		return "", apperr.ValidationError("Unsupported language", apperr.FieldError{
			Field:   "language",
			Message: "must be one of the supported language codes",
		})
	}

	if err := service.sessions.Set(context, visitorID, code); err != nil {
		service.logger.Error("visitor language store failed", "error", err, "visitor_id", visitorID)
		return "", apperr.Internal(err)
	}

	return code, nil
}

// Language satisfies the middleware resolver contract. Lookup failures never
// block a request; they fall back to the platform default.
func (service *Service) Language(request *http.Request, visitorID string) string {
	return service.Current(request.Context(), visitorID)
}
