// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duongnk/eventide/internal/search"
)

// mixedRows is a small corpus covering all three variants.
func mixedRows() []search.Row {
	return []search.Row{
		{ContentType: "event", ID: 1, Title: "Jazz Night", Description: "Live jazz downtown", Date: "2024-05-01", Category: "Music", Tags: []string{"music", "live"}},
		{ContentType: "event", ID: 2, Title: "Art Fair", Description: "Local artists exhibit", Date: "2024-06-15", Category: "Arts", Tags: []string{"art"}},
		{ContentType: "post", ID: 3, Title: "Jazz Retrospective", Description: "Looking back at the season", Date: "2024-05-20", Category: "Culture", Tags: []string{"music", "history"}},
		{ContentType: "post", ID: 4, Title: "Street Food Guide", Description: "Where to eat", Date: "2024-04-10", Category: "Food", Tags: []string{"food"}},
		{ContentType: "media", ID: 5, Title: "Jazz Night", Description: "", Date: "2024-05-02", Category: "Music", Tags: []string{}, MediaType: "image"},
		{ContentType: "media", ID: 6, Title: "Unassigned", Description: "", Date: "2024-07-01", Category: "General", Tags: []string{}, MediaType: "video"},
	}
}

/*
TestFilter_Keyword checks the case-insensitive substring match over
title and description.
*/
func TestFilter_Keyword(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		// Survivors come back in the default date-descending order.
		{"title_match", "jazz", []int{3, 5, 1}},
		{"description_match", "artists", []int{2}},
		{"case_insensitive", "JAZZ", []int{3, 5, 1}},
		{"no_match", "opera", []int{}},
		{"empty_matches_all", "", []int{6, 2, 3, 5, 1, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.Filter(mixedRows(), search.Params{Query: tt.query})
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

/*
TestFilter_TypeScoped verifies that variant-scoped predicates never
drop rows of other variants.
*/
func TestFilter_TypeScoped(t *testing.T) {
	tests := []struct {
		name    string
		params  search.Params
		wantIDs []int
	}{
		{
			// Posts and media pass untouched; only events are tested.
			"event_category",
			search.Params{EventCategory: "Music"},
			[]int{6, 3, 5, 1, 4},
		},
		{
			"post_category",
			search.Params{PostCategory: "Food"},
			[]int{6, 2, 5, 1, 4},
		},
		{
			"post_tag",
			search.Params{PostTag: "music"},
			[]int{6, 2, 3, 5, 1},
		},
		{
			"media_type",
			search.Params{MediaType: "image"},
			[]int{2, 3, 5, 1, 4},
		},
		{
			"content_type_exact",
			search.Params{ContentType: "post"},
			[]int{3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.Filter(mixedRows(), tt.params)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

/*
TestFilter_DateRange checks the inclusive lexicographic date bounds.
*/
func TestFilter_DateRange(t *testing.T) {
	tests := []struct {
		name    string
		params  search.Params
		wantIDs []int
	}{
		{"from_inclusive", search.Params{DateFrom: "2024-05-01"}, []int{6, 2, 3, 5, 1}},
		{"to_inclusive", search.Params{DateTo: "2024-05-01"}, []int{1, 4}},
		{"window", search.Params{DateFrom: "2024-05-01", DateTo: "2024-05-31"}, []int{3, 5, 1}},
		{"empty_window", search.Params{DateFrom: "2025-01-01"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.Filter(mixedRows(), tt.params)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

/*
TestFilter_Conjunction verifies that all predicates must hold at once.
*/
func TestFilter_Conjunction(t *testing.T) {
	got := search.Filter(mixedRows(), search.Params{
		Query:       "jazz",
		ContentType: "event",
		DateFrom:    "2024-05-01",
	})

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

/*
TestFilter_Sort checks the three sort orders including stability.
*/
func TestFilter_Sort(t *testing.T) {
	tests := []struct {
		name    string
		sort    string
		wantIDs []int
	}{
		{"default_date_desc", "", []int{6, 2, 3, 5, 1, 4}},
		{"unknown_falls_back", "relevance", []int{6, 2, 3, 5, 1, 4}},
		{"date_asc", search.SortDateAsc, []int{4, 1, 5, 3, 2, 6}},
		// Category asc, date asc inside each category.
		{"category_asc", search.SortCategoryAsc, []int{2, 3, 4, 6, 1, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.Filter(mixedRows(), search.Params{Sort: tt.sort})
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

/*
TestFilter_DoesNotMutateInput guards the pure-function contract: running
the same filter twice yields identical results and leaves the input alone.
*/
func TestFilter_DoesNotMutateInput(t *testing.T) {
	rows := mixedRows()
	params := search.Params{Query: "jazz", Sort: search.SortDateAsc}

	first := search.Filter(rows, params)
	second := search.Filter(rows, params)

	assert.Equal(t, first, second)
	assert.Equal(t, mixedRows(), rows)
}

// ids projects rows to their IDs for compact expectations.
func ids(rows []search.Row) []int {
	out := make([]int, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ID)
	}
	return out
}
