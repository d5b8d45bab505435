// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search

import (
	"sort"
	"strings"

	"github.com/duongnk/eventide/internal/platform/constants"
)

// Filter applies the parameter bag to rows and sorts the survivors. All
// predicates are conjunctive. Type-scoped predicates (event_category,
// post_category, post_tag, media_type) only test rows of their own variant;
// rows of other variants pass untouched.
//
// The input slice is never mutated; filtering twice with the same params
// yields the same result as once.
func Filter(rows []Row, params Params) []Row {
	filtered := make([]Row, 0, len(rows))

	keyword := strings.ToLower(strings.TrimSpace(params.Query))
	postTag := strings.ToLower(strings.TrimSpace(params.PostTag))

	for _, row := range rows {
		if keyword != "" {
			haystack := strings.ToLower(row.Title + " " + row.Description)
			if !strings.Contains(haystack, keyword) {
				continue
			}
		}

		if params.ContentType != "" && row.ContentType != params.ContentType {
			continue
		}

		if params.EventCategory != "" && row.ContentType == constants.ContentTypeEvent && row.Category != params.EventCategory {
			continue
		}

		if params.PostCategory != "" && row.ContentType == constants.ContentTypePost && row.Category != params.PostCategory {
			continue
		}

		if postTag != "" && row.ContentType == constants.ContentTypePost {
			joined := strings.ToLower(strings.Join(row.Tags, ","))
			if !strings.Contains(joined, postTag) {
				continue
			}
		}

		if params.MediaType != "" && row.ContentType == constants.ContentTypeMedia && row.MediaType != params.MediaType {
			continue
		}

		// Lexicographic range; zero-padded ISO dates make this chronological.
		if params.DateFrom != "" && row.Date < params.DateFrom {
			continue
		}
		if params.DateTo != "" && row.Date > params.DateTo {
			continue
		}

		filtered = append(filtered, row)
	}

	sortRows(filtered, params.Sort)
	return filtered
}

// sortRows orders rows in place. Unrecognized sort values fall back to date
// descending. All orders are stable so serializer order breaks ties.
func sortRows(rows []Row, order string) {
	switch order {
	case SortDateAsc:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date < rows[j].Date
		})
	case SortCategoryAsc:
		sort.SliceStable(rows, func(i, j int) bool {
			if rows[i].Category != rows[j].Category {
				return rows[i].Category < rows[j].Category
			}
			return rows[i].Date < rows[j].Date
		})
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date > rows[j].Date
		})
	}
}
