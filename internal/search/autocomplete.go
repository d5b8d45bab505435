// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search

import "strings"

// Suggest collects up to limit distinct row titles containing the keyword,
// in first-seen order. The scan short-circuits once the limit is reached.
// An empty keyword yields no suggestions rather than every title.
func Suggest(rows []Row, keyword string, limit int) []string {
	suggestions := []string{}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" || limit <= 0 {
		return suggestions
	}

	seen := make(map[string]struct{}, limit)
	for _, row := range rows {
		if !strings.Contains(strings.ToLower(row.Title), keyword) {
			continue
		}
		if _, dup := seen[row.Title]; dup {
			continue
		}

		seen[row.Title] = struct{}{}
		suggestions = append(suggestions, row.Title)
		if len(suggestions) == limit {
			break
		}
	}

	return suggestions
}
