// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

/*
Package reference manages the supporting content of the public site.

It covers the entities that frame the main events/posts catalogue without
being part of it.

# Core Responsibility

  - Sponsors: Partner listings with tier ordering.
  - Guides: Long-form informational pages addressed by slug.
  - FAQs: Ordered question/answer pairs.

All three are bilingual; public listings are scoped to one display language.
*/
package reference

import "time"

// # Sponsor Domain

// Sponsor represents a partner organization shown on the public site.
type Sponsor struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Website   string    `json:"website"`
	Tier      string    `json:"tier"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"-"`
}

// SponsorTiers orders partner levels from most to least prominent.
var SponsorTiers = []string{"platinum", "gold", "silver", "community"}

// # Guide Domain

// Guide is a long-form informational page (venue info, getting there, rules).
type Guide struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// # FAQ Domain

// FAQ is one question/answer pair, shown in ascending SortOrder.
type FAQ struct {
	ID        int       `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Language  string    `json:"language"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"-"`
}

const (
	FieldName     = "name"
	FieldTier     = "tier"
	FieldTitle    = "title"
	FieldBody     = "body"
	FieldQuestion = "question"
	FieldAnswer   = "answer"
	FieldLanguage = "language"
)
