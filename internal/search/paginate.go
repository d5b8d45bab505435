// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search

// Page is one slice of filtered search results plus the paging echo the
// response carries.
type Page struct {
	Results []Row `json:"results"`
	Total   int   `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	HasNext bool  `json:"has_next"`
}

// Paginate slices rows into the 1-based page of the given size. Requests
// beyond the last page return an empty result set, not an error. Page and
// size values below 1 collapse to the defaults.
func Paginate(rows []Row, pageNumber, size int) Page {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	total := len(rows)
	start := (pageNumber - 1) * size
	end := start + size

	results := []Row{}
	if start < total {
		if end > total {
			end = total
		}
		results = rows[start:end]
	}

	return Page{
		Results: results,
		Total:   total,
		Page:    pageNumber,
		PerPage: size,
		HasNext: pageNumber*size < total,
	}
}
