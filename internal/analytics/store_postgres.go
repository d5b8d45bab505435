// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package analytics

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duongnk/eventide/internal/platform/database/schema"
	"github.com/duongnk/eventide/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// TouchPage bumps a page counter in one statement. The upsert keeps
// concurrent increments lossless; there is no read-modify-write window.
func (repository *PostgresRepository) TouchPage(context context.Context, page string, scoreWeight float64) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, 1, $2, NOW())
		ON CONFLICT (%s) DO UPDATE
		SET %s = %s.%s + 1,
		    %s = %s.%s + $2,
		    %s = NOW()
	`,
		schema.StatsPageCounter.Table,
		schema.StatsPageCounter.Page, schema.StatsPageCounter.Views,
		schema.StatsPageCounter.PopularityScore, schema.StatsPageCounter.UpdatedAt,
		schema.StatsPageCounter.Page,
		schema.StatsPageCounter.Views, schema.StatsPageCounter.Table, schema.StatsPageCounter.Views,
		schema.StatsPageCounter.PopularityScore, schema.StatsPageCounter.Table, schema.StatsPageCounter.PopularityScore,
		schema.StatsPageCounter.UpdatedAt,
	)

	_, err := repository.db.Exec(context, query, page, scoreWeight)
	return dberr.Wrap(err, "touch_page_counter")
}

func (repository *PostgresRepository) ListCounters(context context.Context) ([]*PageCounter, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`,
		schema.StatsPageCounter.ID, schema.StatsPageCounter.Page, schema.StatsPageCounter.Views,
		schema.StatsPageCounter.PopularityScore, schema.StatsPageCounter.UpdatedAt,
		schema.StatsPageCounter.Table,
		schema.StatsPageCounter.Views,
	)

	return repository.collectCounters(context, query)
}

func (repository *PostgresRepository) TopPages(context context.Context, limit int) ([]*PageCounter, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT %d
	`,
		schema.StatsPageCounter.ID, schema.StatsPageCounter.Page, schema.StatsPageCounter.Views,
		schema.StatsPageCounter.PopularityScore, schema.StatsPageCounter.UpdatedAt,
		schema.StatsPageCounter.Table,
		schema.StatsPageCounter.PopularityScore,
		limit,
	)

	return repository.collectCounters(context, query)
}

func (repository *PostgresRepository) InsertTracking(context context.Context, event *TrackingEvent) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s, %s
	`,
		schema.StatsTrackingEvent.Table,
		schema.StatsTrackingEvent.VisitorID, schema.StatsTrackingEvent.ContentType,
		schema.StatsTrackingEvent.ContentID, schema.StatsTrackingEvent.ContentTitle,
		schema.StatsTrackingEvent.Category, schema.StatsTrackingEvent.Interaction,
		schema.StatsTrackingEvent.ReferrerDomain, schema.StatsTrackingEvent.CreatedAt,
		schema.StatsTrackingEvent.ID, schema.StatsTrackingEvent.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		event.VisitorID, event.ContentType, event.ContentID, event.ContentTitle,
		event.Category, event.Interaction, event.ReferrerDomain,
	).Scan(&event.ID, &event.CreatedAt)
	return dberr.Wrap(err, "insert_tracking_event")
}

func (repository *PostgresRepository) ListTracking(context context.Context, limit, offset int) ([]*TrackingEvent, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.StatsTrackingEvent.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tracking_events")
	}

	query := repository.trackingSelect() + fmt.Sprintf(" ORDER BY %s DESC LIMIT $1 OFFSET $2", schema.StatsTrackingEvent.CreatedAt)

	events, err := repository.collectTracking(context, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

func (repository *PostgresRepository) AllTracking(context context.Context) ([]*TrackingEvent, error) {
	query := repository.trackingSelect() + fmt.Sprintf(" ORDER BY %s ASC", schema.StatsTrackingEvent.CreatedAt)
	return repository.collectTracking(context, query)
}

// AggregateTracking groups the log by one whitelisted column. The column name
// is interpolated, so callers must pass schema constants only.
func (repository *PostgresRepository) AggregateTracking(context context.Context, column string) ([]CountRow, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(%s, ''), count(*)
		FROM %s
		GROUP BY 1
		ORDER BY 2 DESC
	`, column, schema.StatsTrackingEvent.Table)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "aggregate_tracking")
	}
	defer rows.Close()

	var buckets []CountRow
	for rows.Next() {
		var row CountRow
		if err := rows.Scan(&row.Label, &row.Count); err != nil {
			return nil, dberr.Wrap(err, "scan_aggregate")
		}
		buckets = append(buckets, row)
	}

	return buckets, nil
}

func (repository *PostgresRepository) TopContentByViews(context context.Context, limit int) ([]TopContent, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, count(*)
		FROM %s
		WHERE %s <> 0
		GROUP BY 1, 2, 3
		ORDER BY 4 DESC
		LIMIT %d
	`,
		schema.StatsTrackingEvent.ContentType, schema.StatsTrackingEvent.ContentID,
		schema.StatsTrackingEvent.ContentTitle,
		schema.StatsTrackingEvent.Table,
		schema.StatsTrackingEvent.ContentID,
		limit,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "top_content")
	}
	defer rows.Close()

	var top []TopContent
	for rows.Next() {
		var entry TopContent
		if err := rows.Scan(&entry.ContentType, &entry.ContentID, &entry.ContentTitle, &entry.Count); err != nil {
			return nil, dberr.Wrap(err, "scan_top_content")
		}
		top = append(top, entry)
	}

	return top, nil
}

func (repository *PostgresRepository) EntityCounts(context context.Context) (events, posts, categories, media, messages int, err error) {
	query := fmt.Sprintf(`
		SELECT
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s),
			(SELECT count(*) FROM %s)
	`,
		schema.ContentEvent.Table, schema.ContentPost.Table, schema.ContentCategory.Table,
		schema.ContentMedia.Table, schema.InboxContactMessage.Table,
	)

	err = repository.db.QueryRow(context, query).Scan(&events, &posts, &categories, &media, &messages)
	if err != nil {
		err = dberr.Wrap(err, "entity_counts")
	}
	return
}

func (repository *PostgresRepository) TotalViews(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COALESCE(sum(%s), 0) FROM %s`,
		schema.StatsPageCounter.Views, schema.StatsPageCounter.Table,
	)

	var total int
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "total_views")
	}
	return total, nil
}

func (repository *PostgresRepository) trackingSelect() string {
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.StatsTrackingEvent.ID, schema.StatsTrackingEvent.VisitorID,
		schema.StatsTrackingEvent.ContentType, schema.StatsTrackingEvent.ContentID,
		schema.StatsTrackingEvent.ContentTitle, schema.StatsTrackingEvent.Category,
		schema.StatsTrackingEvent.Interaction, schema.StatsTrackingEvent.ReferrerDomain,
		schema.StatsTrackingEvent.CreatedAt,
		schema.StatsTrackingEvent.Table,
	)
}

func (repository *PostgresRepository) collectTracking(context context.Context, query string, args ...any) ([]*TrackingEvent, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tracking_events")
	}
	defer rows.Close()

	var events []*TrackingEvent
	for rows.Next() {
		e := &TrackingEvent{}
		err := rows.Scan(
			&e.ID, &e.VisitorID, &e.ContentType, &e.ContentID, &e.ContentTitle,
			&e.Category, &e.Interaction, &e.ReferrerDomain, &e.CreatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_tracking_event")
		}
		events = append(events, e)
	}

	return events, nil
}

func (repository *PostgresRepository) collectCounters(context context.Context, query string) ([]*PageCounter, error) {
	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_page_counters")
	}
	defer rows.Close()

	var counters []*PageCounter
	for rows.Next() {
		c := &PageCounter{}
		if err := rows.Scan(&c.ID, &c.Page, &c.Views, &c.PopularityScore, &c.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_page_counter")
		}
		counters = append(counters, c)
	}

	return counters, nil
}
