// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duongnk/eventide/pkg/query"
)

/*
TestStringSlice checks the canonical tag-string split.
*/
func TestStringSlice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain", "music,food", []string{"music", "food"}},
		{"trims_whitespace", " music , food ", []string{"music", "food"}},
		{"drops_empty_tokens", "music, ,food", []string{"music", "food"}},
		{"keeps_duplicates", "a,a,b", []string{"a", "a", "b"}},
		{"empty_input", "", nil},
		{"only_separators", ", ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.StringSlice(tt.input))
		})
	}
}

/*
TestIntSlice checks lenient integer parsing of query values.
*/
func TestIntSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []int
	}{
		{"plain", []string{"1", "2"}, []int{1, 2}},
		{"skips_invalid", []string{"1", "x", "3"}, []int{1, 3}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.IntSlice(tt.input))
		})
	}
}
