// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package post

import "time"

// Post represents a blog article.
//
// Body holds sanitized HTML. Tags is the raw comma-separated string as
// entered by the admin.
type Post struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Tags        string    `json:"tags"`
	Language    string    `json:"language"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`

	// Categories carries the assigned categories in association order.
	// Populated on reads, ignored on writes (use CategoryIDs).
	Categories []Assigned `json:"categories"`

	// CategoryIDs is the write-side category assignment. The stored junction
	// set is replaced wholesale on create and update.
	CategoryIDs []int `json:"category_ids,omitempty"`
}

// Assigned is a category reference attached to a post.
type Assigned struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Filter holds the parameters for a post listing.
type Filter struct {
	Keyword    string // substring match against title, case-insensitive
	CategoryID int    // 0 = any
	Date       string // exact publication day, "YYYY-MM-DD"; empty = any
	Language   string // empty = any
}

const (
	FieldTitle    = "title"
	FieldBody     = "body"
	FieldLanguage = "language"
)
