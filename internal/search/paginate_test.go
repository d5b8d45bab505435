// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duongnk/eventide/internal/search"
)

func rowsOfSize(n int) []search.Row {
	rows := make([]search.Row, n)
	for i := range rows {
		rows[i] = search.Row{ID: i + 1}
	}
	return rows
}

/*
TestPaginate covers slicing, the has-next flag, and out-of-range pages.
*/
func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		page        int
		size        int
		wantIDs     []int
		wantHasNext bool
	}{
		{"first_page", 5, 1, 2, []int{1, 2}, true},
		{"middle_page", 5, 2, 2, []int{3, 4}, true},
		{"last_partial_page", 5, 3, 2, []int{5}, false},
		{"exact_fit_last_page", 4, 2, 2, []int{3, 4}, false},
		{"single_row_page_two", 2, 2, 1, []int{2}, false},
		{"beyond_last_page", 5, 9, 2, []int{}, false},
		{"empty_input", 0, 1, 2, []int{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := search.Paginate(rowsOfSize(tt.total), tt.page, tt.size)

			assert.Equal(t, tt.wantIDs, ids(page.Results))
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.page, page.Page)
			assert.Equal(t, tt.size, page.PerPage)
			assert.Equal(t, tt.wantHasNext, page.HasNext)

			// Out-of-range pages return an empty slice, never nil.
			assert.NotNil(t, page.Results)
		})
	}
}

/*
TestPaginate_Defaults checks that page and size values below 1 collapse
to the documented defaults.
*/
func TestPaginate_Defaults(t *testing.T) {
	page := search.Paginate(rowsOfSize(30), 0, -5)

	assert.Equal(t, search.DefaultPage, page.Page)
	assert.Equal(t, search.DefaultPageSize, page.PerPage)
	assert.Len(t, page.Results, search.DefaultPageSize)
	assert.True(t, page.HasNext)
}
