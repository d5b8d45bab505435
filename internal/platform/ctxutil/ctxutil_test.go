// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/ctxutil"
	"github.com/duongnk/eventide/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies that AuthClaims can be stored in context.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{
		UserID: "user-123",
		Role:   "admin",
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithAuthUser(ctx, claims)
	retrieved := ctxutil.GetAuthUser(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "user-123", retrieved.UserID)
	assert.Equal(t, "admin", retrieved.Role)
}

/*
TestContext_VisitorID verifies the anonymous fallback when the visitor
middleware did not run.
*/
func TestContext_VisitorID(t *testing.T) {
	ctx := context.Background()

	// 1. Missing or empty collapses to the anonymous sentinel
	assert.Equal(t, "anonymous", ctxutil.GetVisitorID(ctx))
	assert.Equal(t, "anonymous", ctxutil.GetVisitorID(ctxutil.WithVisitorID(ctx, "")))

	// 2. Inject and retrieve
	ctx = ctxutil.WithVisitorID(ctx, "visitor-42")
	assert.Equal(t, "visitor-42", ctxutil.GetVisitorID(ctx))
}

/*
TestContext_Language verifies the display language default and override.
*/
func TestContext_Language(t *testing.T) {
	ctx := context.Background()

	// 1. Missing falls back to the platform default
	assert.Equal(t, constants.DefaultLanguage, ctxutil.GetLanguage(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLanguage(ctx, "vi")
	assert.Equal(t, "vi", ctxutil.GetLanguage(ctx))
}
