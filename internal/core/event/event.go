// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package event

import "time"

// Event represents a community happening with a date and location.
//
// Tags is a raw comma-separated string as entered by the admin; it is split
// into a list only at presentation time.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Tags        string    `json:"tags"`
	Language    string    `json:"language"`
	EventDate   time.Time `json:"event_date"`
	CreatedAt   time.Time `json:"created_at"`

	// Categories carries the assigned categories in association order.
	// Populated on reads, ignored on writes (use CategoryIDs).
	Categories []Assigned `json:"categories"`

	// CategoryIDs is the write-side category assignment. The stored junction
	// set is replaced wholesale on create and update.
	CategoryIDs []int `json:"category_ids,omitempty"`
}

// Assigned is a category reference attached to an event.
type Assigned struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Filter holds the parameters for an event listing.
type Filter struct {
	Keyword    string // substring match against title, case-insensitive
	CategoryID int    // 0 = any
	Date       string // exact-day filter, YYYY-MM-DD; empty = any
	Language   string // empty = any
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldEventDate   = "event_date"
	FieldLanguage    = "language"
)
