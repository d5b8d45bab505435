// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

/*
Package analytics records and reports visitor activity.

# Core Responsibility

  - Page counters: per-page view totals with a weighted popularity score.
  - Tracking log: an append-only stream of visitor interactions.
  - Reports: admin aggregates, CSV export and the dashboard summary.

Counter increments are single atomic upserts so concurrent visits never lose
updates. Recording is best-effort from the caller's point of view: a failed
write is logged and swallowed, it never fails the visitor's request.
*/
package analytics

import "time"

// PageCounter accumulates views for one logical page ("event:12", "home").
type PageCounter struct {
	ID              int       `json:"id"`
	Page            string    `json:"page"`
	Views           int       `json:"views"`
	PopularityScore float64   `json:"popularity_score"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TrackingEvent is one logged visitor interaction.
type TrackingEvent struct {
	ID             int       `json:"id"`
	VisitorID      string    `json:"visitor_id"`
	ContentType    string    `json:"content_type"`
	ContentID      int       `json:"content_id"`
	ContentTitle   string    `json:"content_title"`
	Category       string    `json:"category"`
	Interaction    string    `json:"interaction"`
	ReferrerDomain string    `json:"referrer_domain"`
	CreatedAt      time.Time `json:"created_at"`
}

// CountRow is one bucket of a group-by aggregate.
type CountRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TopContent is one entry of the most-interacted content report.
type TopContent struct {
	ContentType  string `json:"content_type"`
	ContentID    int    `json:"content_id"`
	ContentTitle string `json:"content_title"`
	Count        int    `json:"count"`
}

// Report bundles the admin aggregate views of the tracking log.
type Report struct {
	ByInteraction []CountRow   `json:"by_interaction"`
	ByContentType []CountRow   `json:"by_content_type"`
	ByReferrer    []CountRow   `json:"by_referrer"`
	TopContent    []TopContent `json:"top_content"`
}

// Dashboard is the admin landing summary.
type Dashboard struct {
	Events      int            `json:"events"`
	Posts       int            `json:"posts"`
	Categories  int            `json:"categories"`
	Media       int            `json:"media"`
	Messages    int            `json:"messages"`
	TotalViews  int            `json:"total_views"`
	TopPages    []*PageCounter `json:"top_pages"`
}

// InteractionView is the interaction kind logged for detail-page visits.
const InteractionView = "view"

// ReferrerDirect labels visits with a missing or unparsable Referer header.
const ReferrerDirect = "direct"
