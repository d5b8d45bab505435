// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

/*
Package search implements the public search pipeline.

Events, posts and media are flattened into one homogeneous row shape, then
filtered, sorted and paginated in memory on every request.

# Pipeline

 1. Serializer: fetch content for one display language and flatten it into
    tagged [Row] values.
 2. Filter/sort: conjunctive predicates over the rows, then one of three
    orders.
 3. Pagination: 1-based slicing with a has-next flag.

The full scan is deliberate. Content volumes are small, and rebuilding the
rows on every request means no cache can ever serve stale content.
*/
package search

import "github.com/duongnk/eventide/internal/platform/constants"

// Row is the tagged union of an event, post or media entry in search
// results. ContentType discriminates the variant; fields that do not apply
// to a variant hold "" rather than being omitted, which is part of the
// published response shape.
type Row struct {
	ContentType string   `json:"content_type"`
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	MediaType   string   `json:"media_type"`
	URL         string   `json:"url"`
	Thumbnail   string   `json:"thumbnail"`
}

// Params is the filter/sort parameter bag of one search request. Empty
// fields mean "no constraint".
type Params struct {
	Query         string // case-insensitive substring over title + " " + description
	ContentType   string // exact row variant match
	EventCategory string // category name, event rows only
	PostCategory  string // category name, post rows only
	PostTag       string // substring over joined tags, post rows only
	MediaType     string // exact media type, media rows only
	DateFrom      string // inclusive lower bound, lexicographic
	DateTo        string // inclusive upper bound, lexicographic
	Sort          string // "date_asc", "category_asc", anything else = date descending
}

// Sort orders recognized by the filter stage.
const (
	SortDateAsc     = "date_asc"
	SortCategoryAsc = "category_asc"
)

// Paging defaults for the search endpoint.
const (
	DefaultPage     = 1
	DefaultPageSize = constants.SearchDefaultPageSize
)

// DateLayout is the row date format. Zero-padded ISO dates keep
// lexicographic comparison equal to chronological order, which the
// date-range filter relies on.
const DateLayout = "2006-01-02"

// UnassignedTitle labels media rows whose link points nowhere.
const UnassignedTitle = "Unassigned"
