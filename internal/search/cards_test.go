// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/duongnk/eventide/internal/search"
)

/*
TestEventCard checks flattening, tag splitting and the category sentinel.
*/
func TestEventCard(t *testing.T) {
	tests := []struct {
		name         string
		source       search.EventSource
		wantCategory string
		wantCatID    int
		wantTags     []string
	}{
		{
			"with_category_and_tags",
			search.EventSource{
				ID: 1, Title: "Jazz Night", Tags: "music, live,  ,food",
				Date:       time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC),
				CategoryID: 7, CategoryName: "Music",
			},
			"Music", 7, []string{"music", "live", "food"},
		},
		{
			"no_category_falls_back",
			search.EventSource{
				ID: 2, Title: "Open Day", Tags: "",
				Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			},
			"General", 0, []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := search.EventCard(tt.source)

			assert.Equal(t, tt.source.ID, card.ID)
			assert.Equal(t, tt.wantCategory, card.Category)
			assert.Equal(t, tt.wantCatID, card.CategoryID)
			assert.Equal(t, tt.wantTags, card.Tags)
			assert.Equal(t, tt.source.Date.Format(search.DateLayout), card.Date)
		})
	}
}

/*
TestPostCard_Excerpt checks the rune-safe excerpt boundary.
*/
func TestPostCard_Excerpt(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantCut bool
	}{
		{"short_body_untouched", "A short post.", "A short post.", false},
		{"exact_boundary_untouched", strings.Repeat("x", 160), strings.Repeat("x", 160), false},
		{"over_boundary_cut", strings.Repeat("x", 161), strings.Repeat("x", 160) + "...", true},
		{"multibyte_counted_as_runes", strings.Repeat("ê", 160), strings.Repeat("ê", 160), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := search.PostCard(search.PostSource{
				ID: 1, Title: "Post", Body: tt.body,
				Date: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			})

			assert.Equal(t, tt.want, card.Excerpt)
			if tt.wantCut {
				assert.True(t, strings.HasSuffix(card.Excerpt, "..."))
			}
		})
	}
}
