// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package search

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duongnk/eventide/internal/core/media"
	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/database/schema"
	"github.com/duongnk/eventide/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EventsByLanguage loads events with their display category (lowest junction
// id) and latest linked image resolved in one query.
func (repository *PostgresRepository) EventsByLanguage(context context.Context, language string) ([]EventSource, error) {
	query := fmt.Sprintf(`
		SELECT e.%s, e.%s, e.%s, e.%s, e.%s, e.%s,
		       COALESCE(fc.category_id, 0), COALESCE(fc.category_name, ''),
		       COALESCE(img.filename, '')
		FROM %s e
		LEFT JOIN LATERAL (
			SELECT c.%s AS category_id, c.%s AS category_name
			FROM %s ec
			JOIN %s c ON c.%s = ec.%s
			WHERE ec.%s = e.%s
			ORDER BY ec.%s ASC
			LIMIT 1
		) fc ON true
		LEFT JOIN LATERAL (
			SELECT m.%s AS filename
			FROM %s m
			WHERE m.%s = '%s' AND m.%s = e.%s AND m.%s = '%s'
			ORDER BY m.%s DESC
			LIMIT 1
		) img ON true
		WHERE e.%s = $1
		ORDER BY e.%s ASC
	`,
		schema.ContentEvent.ID, schema.ContentEvent.Title, schema.ContentEvent.Description,
		schema.ContentEvent.Location, schema.ContentEvent.Tags, schema.ContentEvent.EventDate,
		schema.ContentEvent.Table,
		schema.ContentCategory.ID, schema.ContentCategory.Name,
		schema.ContentEventCategory.Table,
		schema.ContentCategory.Table, schema.ContentCategory.ID, schema.ContentEventCategory.CategoryID,
		schema.ContentEventCategory.EventID, schema.ContentEvent.ID,
		schema.ContentEventCategory.ID,
		schema.ContentMedia.Filename,
		schema.ContentMedia.Table,
		schema.ContentMedia.LinkedType, constants.ContentTypeEvent,
		schema.ContentMedia.LinkedID, schema.ContentEvent.ID,
		schema.ContentMedia.MediaType, media.TypeImage,
		schema.ContentMedia.UploadedAt,
		schema.ContentEvent.Language,
		schema.ContentEvent.ID,
	)

	rows, err := repository.db.Query(context, query, language)
	if err != nil {
		return nil, dberr.Wrap(err, "search_events")
	}
	defer rows.Close()

	var sources []EventSource
	for rows.Next() {
		var s EventSource
		err := rows.Scan(
			&s.ID, &s.Title, &s.Description, &s.Location, &s.Tags, &s.Date,
			&s.CategoryID, &s.CategoryName, &s.Image,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_search_event")
		}
		sources = append(sources, s)
	}

	return sources, nil
}

// PostsByLanguage mirrors EventsByLanguage over the post tables.
func (repository *PostgresRepository) PostsByLanguage(context context.Context, language string) ([]PostSource, error) {
	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s,
		       COALESCE(fc.category_id, 0), COALESCE(fc.category_name, ''),
		       COALESCE(img.filename, '')
		FROM %s p
		LEFT JOIN LATERAL (
			SELECT c.%s AS category_id, c.%s AS category_name
			FROM %s pc
			JOIN %s c ON c.%s = pc.%s
			WHERE pc.%s = p.%s
			ORDER BY pc.%s ASC
			LIMIT 1
		) fc ON true
		LEFT JOIN LATERAL (
			SELECT m.%s AS filename
			FROM %s m
			WHERE m.%s = '%s' AND m.%s = p.%s AND m.%s = '%s'
			ORDER BY m.%s DESC
			LIMIT 1
		) img ON true
		WHERE p.%s = $1
		ORDER BY p.%s ASC
	`,
		schema.ContentPost.ID, schema.ContentPost.Title, schema.ContentPost.Body,
		schema.ContentPost.Tags, schema.ContentPost.PublishedAt,
		schema.ContentPost.Table,
		schema.ContentCategory.ID, schema.ContentCategory.Name,
		schema.ContentPostCategory.Table,
		schema.ContentCategory.Table, schema.ContentCategory.ID, schema.ContentPostCategory.CategoryID,
		schema.ContentPostCategory.PostID, schema.ContentPost.ID,
		schema.ContentPostCategory.ID,
		schema.ContentMedia.Filename,
		schema.ContentMedia.Table,
		schema.ContentMedia.LinkedType, constants.ContentTypePost,
		schema.ContentMedia.LinkedID, schema.ContentPost.ID,
		schema.ContentMedia.MediaType, media.TypeImage,
		schema.ContentMedia.UploadedAt,
		schema.ContentPost.Language,
		schema.ContentPost.ID,
	)

	rows, err := repository.db.Query(context, query, language)
	if err != nil {
		return nil, dberr.Wrap(err, "search_posts")
	}
	defer rows.Close()

	var sources []PostSource
	for rows.Next() {
		var s PostSource
		err := rows.Scan(
			&s.ID, &s.Title, &s.Body, &s.Tags, &s.Date,
			&s.CategoryID, &s.CategoryName, &s.Image,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_search_post")
		}
		sources = append(sources, s)
	}

	return sources, nil
}

// AllMedia loads every media row newest first, with the linked entity's
// title, display category and language resolved alongside. All three stay
// NULL for unassigned or dangling links.
func (repository *PostgresRepository) AllMedia(context context.Context) ([]MediaSource, error) {
	query := fmt.Sprintf(`
		SELECT m.%s, m.%s, m.%s, m.%s,
		       COALESCE(e.%s, p.%s),
		       COALESCE(efc.category_name, pfc.category_name),
		       COALESCE(e.%s, p.%s)
		FROM %s m
		LEFT JOIN %s e ON m.%s = '%s' AND e.%s = m.%s
		LEFT JOIN %s p ON m.%s = '%s' AND p.%s = m.%s
		LEFT JOIN LATERAL (
			SELECT c.%s AS category_name
			FROM %s ec
			JOIN %s c ON c.%s = ec.%s
			WHERE ec.%s = e.%s
			ORDER BY ec.%s ASC
			LIMIT 1
		) efc ON e.%s IS NOT NULL
		LEFT JOIN LATERAL (
			SELECT c.%s AS category_name
			FROM %s pc
			JOIN %s c ON c.%s = pc.%s
			WHERE pc.%s = p.%s
			ORDER BY pc.%s ASC
			LIMIT 1
		) pfc ON p.%s IS NOT NULL
		ORDER BY m.%s DESC
	`,
		schema.ContentMedia.ID, schema.ContentMedia.Filename,
		schema.ContentMedia.MediaType, schema.ContentMedia.UploadedAt,
		schema.ContentEvent.Title, schema.ContentPost.Title,
		schema.ContentEvent.Language, schema.ContentPost.Language,
		schema.ContentMedia.Table,
		schema.ContentEvent.Table, schema.ContentMedia.LinkedType, constants.ContentTypeEvent,
		schema.ContentEvent.ID, schema.ContentMedia.LinkedID,
		schema.ContentPost.Table, schema.ContentMedia.LinkedType, constants.ContentTypePost,
		schema.ContentPost.ID, schema.ContentMedia.LinkedID,
		schema.ContentCategory.Name,
		schema.ContentEventCategory.Table,
		schema.ContentCategory.Table, schema.ContentCategory.ID, schema.ContentEventCategory.CategoryID,
		schema.ContentEventCategory.EventID, schema.ContentEvent.ID,
		schema.ContentEventCategory.ID,
		schema.ContentEvent.ID,
		schema.ContentCategory.Name,
		schema.ContentPostCategory.Table,
		schema.ContentCategory.Table, schema.ContentCategory.ID, schema.ContentPostCategory.CategoryID,
		schema.ContentPostCategory.PostID, schema.ContentPost.ID,
		schema.ContentPostCategory.ID,
		schema.ContentPost.ID,
		schema.ContentMedia.UploadedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "search_media")
	}
	defer rows.Close()

	var sources []MediaSource
	for rows.Next() {
		var s MediaSource
		err := rows.Scan(
			&s.ID, &s.Filename, &s.MediaType, &s.UploadedAt,
			&s.LinkedTitle, &s.LinkedCategory, &s.LinkedLanguage,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_search_media")
		}
		sources = append(sources, s)
	}

	return sources, nil
}
