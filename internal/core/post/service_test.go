// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package post_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duongnk/eventide/internal/core/post"
)

// capturingRepository records the filter each listing call receives.
type capturingRepository struct {
	lastFilter post.Filter
}

func (repo *capturingRepository) ListPosts(_ context.Context, f post.Filter, _, _ int) ([]*post.Post, int, error) {
	repo.lastFilter = f
	return []*post.Post{}, 0, nil
}

func (repo *capturingRepository) GetPost(_ context.Context, _ int) (*post.Post, error) {
	return nil, nil
}

func (repo *capturingRepository) CreatePost(_ context.Context, _ *post.Post, _ []int) error {
	return nil
}

func (repo *capturingRepository) UpdatePost(_ context.Context, _ *post.Post, _ []int) error {
	return nil
}

func (repo *capturingRepository) DeletePost(_ context.Context, _ int) error {
	return nil
}

type noopRecorder struct{}

func (noopRecorder) RecordView(_ context.Context, _ string, _ string, _ string, _ int, _ string, _ string, _ string) {
}

/*
TestService_ListPosts_DateFilter checks that a well-formed exact-day
filter reaches the store and a malformed one is dropped, not an error.
*/
func TestService_ListPosts_DateFilter(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		wantDate string
	}{
		{"valid_date_passes_through", "2024-05-01", "2024-05-01"},
		{"malformed_date_dropped", "05/01/2024", ""},
		{"nonsense_dropped", "yesterday", ""},
		{"empty_untouched", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &capturingRepository{}
			service := post.NewService(repo, noopRecorder{}, slog.Default())

			_, _, err := service.ListPosts(context.Background(), post.Filter{Date: tt.date}, 20, 0)

			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, repo.lastFilter.Date)
		})
	}
}
