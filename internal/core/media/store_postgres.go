// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package media

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

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

func (repository *PostgresRepository) ListMedia(context context.Context, f Filter, limit, offset int) ([]*Media, int, error) {
	base := fmt.Sprintf(`FROM %s WHERE 1=1`, schema.ContentMedia.Table)

	args := []any{}
	if f.MediaType != "" {
		args = append(args, f.MediaType)
		base += fmt.Sprintf(" AND %s = $%d", schema.ContentMedia.MediaType, len(args))
	}

	var total int
	if err := repository.db.QueryRow(context, "SELECT count(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_media")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		%s
		ORDER BY %s DESC
		LIMIT $%d OFFSET $%d
	`,
		schema.ContentMedia.ID, schema.ContentMedia.Filename, schema.ContentMedia.MediaType,
		schema.ContentMedia.LinkedType, schema.ContentMedia.LinkedID, schema.ContentMedia.UploadedAt,
		base,
		schema.ContentMedia.UploadedAt, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	return repository.collect(context, query, args, &total)
}

// ListGallery returns assets whose resolved language matches. Resolution
// follows the linked entity; unlinked or dangling links count as the
// platform default language.
func (repository *PostgresRepository) ListGallery(context context.Context, language string, limit, offset int) ([]*Media, int, error) {
	base := fmt.Sprintf(`
		FROM %s m
		LEFT JOIN %s e ON m.%s = '%s' AND e.%s = m.%s
		LEFT JOIN %s p ON m.%s = '%s' AND p.%s = m.%s
		WHERE COALESCE(e.%s, p.%s, '%s') = $1
	`,
		schema.ContentMedia.Table,
		schema.ContentEvent.Table, schema.ContentMedia.LinkedType, constants.ContentTypeEvent,
		schema.ContentEvent.ID, schema.ContentMedia.LinkedID,
		schema.ContentPost.Table, schema.ContentMedia.LinkedType, constants.ContentTypePost,
		schema.ContentPost.ID, schema.ContentMedia.LinkedID,
		schema.ContentEvent.Language, schema.ContentPost.Language, constants.DefaultLanguage,
	)

	args := []any{language}

	var total int
	if err := repository.db.QueryRow(context, "SELECT count(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_gallery")
	}

	query := fmt.Sprintf(`
		SELECT m.%s, m.%s, m.%s, m.%s, m.%s, m.%s
		%s
		ORDER BY m.%s DESC
		LIMIT $2 OFFSET $3
	`,
		schema.ContentMedia.ID, schema.ContentMedia.Filename, schema.ContentMedia.MediaType,
		schema.ContentMedia.LinkedType, schema.ContentMedia.LinkedID, schema.ContentMedia.UploadedAt,
		base,
		schema.ContentMedia.UploadedAt,
	)
	args = append(args, limit, offset)

	return repository.collect(context, query, args, &total)
}

func (repository *PostgresRepository) GetMedia(context context.Context, id int) (*Media, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.ContentMedia.ID, schema.ContentMedia.Filename, schema.ContentMedia.MediaType,
		schema.ContentMedia.LinkedType, schema.ContentMedia.LinkedID, schema.ContentMedia.UploadedAt,
		schema.ContentMedia.Table, schema.ContentMedia.ID,
	)

	m := &Media{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&m.ID, &m.Filename, &m.MediaType, &m.LinkedType, &m.LinkedID, &m.UploadedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_media")
	}

	m.URL = PublicURL(m.Filename)
	return m, nil
}

func (repository *PostgresRepository) CreateMedia(context context.Context, m *Media) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s, %s
	`,
		schema.ContentMedia.Table,
		schema.ContentMedia.Filename, schema.ContentMedia.MediaType,
		schema.ContentMedia.LinkedType, schema.ContentMedia.LinkedID,
		schema.ContentMedia.UploadedAt,
		schema.ContentMedia.ID, schema.ContentMedia.UploadedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.Filename, m.MediaType, m.LinkedType, m.LinkedID,
	).Scan(&m.ID, &m.UploadedAt)
	return dberr.Wrap(err, "create_media")
}

func (repository *PostgresRepository) DeleteMedia(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentMedia.Table, schema.ContentMedia.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_media")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) collect(context context.Context, query string, args []any, total *int) ([]*Media, int, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_media")
	}
	defer rows.Close()

	var assets []*Media
	for rows.Next() {
		m := &Media{}
		if err := rows.Scan(&m.ID, &m.Filename, &m.MediaType, &m.LinkedType, &m.LinkedID, &m.UploadedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_media")
		}
		m.URL = PublicURL(m.Filename)
		assets = append(assets, m)
	}

	return assets, *total, nil
}
