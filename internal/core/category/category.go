// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package category

import "time"

// Category labels events or posts. A category belongs to exactly one content
// type; "music" for events and "music" for posts are separate rows.
type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	FieldName        = "name"
	FieldContentType = "content_type"
)

// FallbackName labels content with no category assignment.
const FallbackName = "General"

// FallbackID is the category id reported alongside FallbackName.
const FallbackID = 0
