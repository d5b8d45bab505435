// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duongnk/eventide/internal/search"
)

/*
TestSuggest covers matching, distinctness, first-seen ordering, and the
empty-keyword guard.
*/
func TestSuggest(t *testing.T) {
	rows := []search.Row{
		{Title: "Jazz Night"},
		{Title: "Art Fair"},
		{Title: "Jazz Night"}, // duplicate title, different row
		{Title: "jazz brunch"},
		{Title: "Food Market"},
	}

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{"case_insensitive_distinct", "jazz", []string{"Jazz Night", "jazz brunch"}},
		{"first_seen_order", "a", []string{"Jazz Night", "Art Fair", "jazz brunch", "Food Market"}},
		{"no_match", "opera", []string{}},
		{"empty_keyword", "", []string{}},
		{"whitespace_keyword", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.Suggest(rows, tt.keyword, 8)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got)
		})
	}
}

/*
TestSuggest_Limit verifies the scan stops at the limit.
*/
func TestSuggest_Limit(t *testing.T) {
	rows := make([]search.Row, 20)
	for i := range rows {
		rows[i] = search.Row{Title: fmt.Sprintf("Event %02d", i)}
	}

	got := search.Suggest(rows, "event", 8)

	assert.Len(t, got, 8)
	assert.Equal(t, "Event 00", got[0])
	assert.Equal(t, "Event 07", got[7])
}
