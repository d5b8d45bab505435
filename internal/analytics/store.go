// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package analytics

import "context"

/*
Repository defines the data access contract for analytics storage.

Parameters:
  - TouchPage: one atomic upsert; views increments by one, the popularity
    score by the given weight.
  - AggregateTracking: column must be one of the whitelisted group-by
    columns, never caller input.

Returns:
  - ListTracking returns the page plus the total row count.
*/
type Repository interface {
	TouchPage(context context.Context, page string, scoreWeight float64) error
	ListCounters(context context.Context) ([]*PageCounter, error)
	TopPages(context context.Context, limit int) ([]*PageCounter, error)

	InsertTracking(context context.Context, event *TrackingEvent) error
	ListTracking(context context.Context, limit, offset int) ([]*TrackingEvent, int, error)
	AllTracking(context context.Context) ([]*TrackingEvent, error)
	AggregateTracking(context context.Context, column string) ([]CountRow, error)
	TopContentByViews(context context.Context, limit int) ([]TopContent, error)

	EntityCounts(context context.Context) (events, posts, categories, media, messages int, err error)
	TotalViews(context context.Context) (int, error)
}
