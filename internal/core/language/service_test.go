// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package language_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duongnk/eventide/internal/core/language"
	"github.com/duongnk/eventide/internal/platform/apperr"
)

// memorySessions is an in-memory SessionRepository.
type memorySessions struct {
	store   map[string]string
	failGet error
	failSet error
}

func (sessions *memorySessions) Get(_ context.Context, visitorID string) (string, error) {
	if sessions.failGet != nil {
		return "", sessions.failGet
	}
	return sessions.store[visitorID], nil
}

func (sessions *memorySessions) Set(_ context.Context, visitorID, code string) error {
	if sessions.failSet != nil {
		return sessions.failSet
	}
	sessions.store[visitorID] = code
	return nil
}

func newMemorySessions() *memorySessions {
	return &memorySessions{store: map[string]string{}}
}

/*
TestNormalize checks code normalization onto the supported set.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"default", "en", "en"},
		{"secondary", "vi", "vi"},
		{"unknown_collapses", "fr", "en"},
		{"empty_collapses", "", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, language.Normalize(tt.code))
		})
	}
}

/*
TestService_CurrentAndChoose round-trips a preference through the session
store.
*/
func TestService_CurrentAndChoose(t *testing.T) {
	sessions := newMemorySessions()
	service := language.NewService(sessions, slog.Default())
	ctx := context.Background()

	// No stored preference falls back to the default.
	assert.Equal(t, "en", service.Current(ctx, "visitor-1"))

	stored, err := service.Choose(ctx, "visitor-1", "vi")
	require.NoError(t, err)
	assert.Equal(t, "vi", stored)
	assert.Equal(t, "vi", service.Current(ctx, "visitor-1"))
}

/*
TestService_Choose_Unsupported rejects codes outside the supported set.
*/
func TestService_Choose_Unsupported(t *testing.T) {
	service := language.NewService(newMemorySessions(), slog.Default())

	_, err := service.Choose(context.Background(), "visitor-1", "de")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_Current_LookupFailure verifies a broken session store never
breaks the request; it falls back to the default language.
*/
func TestService_Current_LookupFailure(t *testing.T) {
	sessions := newMemorySessions()
	sessions.failGet = assert.AnError
	service := language.NewService(sessions, slog.Default())

	assert.Equal(t, "en", service.Current(context.Background(), "visitor-1"))
}
