// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/ctxkey"
	"github.com/duongnk/eventide/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// WithAuthUser returns a new context with the provided auth claims attached.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the [*sec.AuthClaims] from the [context.Context].
// Returns nil if the request is anonymous.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// # Visitor Session

// WithVisitorID returns a new context with the anonymous visitor ID attached.
func WithVisitorID(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyVisitorID, visitorID)
}

// GetVisitorID retrieves the anonymous visitor ID from the context.
// Returns "anonymous" if the visitor middleware did not run.
func GetVisitorID(ctx context.Context) string {
	id, ok := ctx.Value(ctxkey.KeyVisitorID).(string)
	if !ok || id == "" {
		return "anonymous"
	}
	return id
}

// # Display Language

// WithLanguage returns a new context with the visitor's display language attached.
func WithLanguage(ctx context.Context, language string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLanguage, language)
}

// GetLanguage retrieves the visitor's display language from the context.
//
// The ambient session value stops here: handlers read it once and pass it to
// services as an explicit parameter.
func GetLanguage(ctx context.Context) string {
	language, ok := ctx.Value(ctxkey.KeyLanguage).(string)
	if !ok || language == "" {
		return constants.DefaultLanguage
	}
	return language
}
