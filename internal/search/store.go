// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search

import (
	"context"
	"time"
)

// EventSource is the event projection the card builder consumes: the entity
// plus its display category and latest linked image, already resolved.
type EventSource struct {
	ID          int
	Title       string
	Description string
	Location    string
	Tags        string
	Date        time.Time

	// CategoryID/CategoryName are the first category in association order;
	// zero values when the event has none.
	CategoryID   int
	CategoryName string

	// Image is the most recently uploaded linked image filename, "" if none.
	Image string
}

// PostSource is the post projection, symmetric to EventSource.
type PostSource struct {
	ID    int
	Title string
	Body  string
	Tags  string
	Date  time.Time

	CategoryID   int
	CategoryName string
	Image        string
}

// MediaSource is one media row plus the resolution data of its linked
// entity. The pointers are nil when the link is absent or dangling.
type MediaSource struct {
	ID         int
	Filename   string
	MediaType  string
	UploadedAt time.Time

	LinkedTitle    *string
	LinkedCategory *string
	LinkedLanguage *string
}

/*
Repository feeds the serializer.

Returns:
  - EventsByLanguage / PostsByLanguage return entities in store order
    (ascending id), unordered otherwise.
  - AllMedia returns every media row regardless of language, ordered by
    upload time descending; language scoping happens in the serializer
    against the resolved link.
*/
type Repository interface {
	EventsByLanguage(context context.Context, language string) ([]EventSource, error)
	PostsByLanguage(context context.Context, language string) ([]PostSource, error)
	AllMedia(context context.Context) ([]MediaSource, error)
}
