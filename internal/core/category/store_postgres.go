// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package category

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

func (repository *PostgresRepository) ListCategories(context context.Context, contentType string) ([]*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
	`,
		schema.ContentCategory.ID, schema.ContentCategory.Name,
		schema.ContentCategory.ContentType, schema.ContentCategory.CreatedAt,
		schema.ContentCategory.Table,
	)

	args := []any{}
	if contentType != "" {
		query += fmt.Sprintf(" WHERE %s = $1", schema.ContentCategory.ContentType)
		args = append(args, contentType)
	}
	query += fmt.Sprintf(" ORDER BY %s DESC", schema.ContentCategory.CreatedAt)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		c := &Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.ContentType, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, c)
	}

	return categories, nil
}

func (repository *PostgresRepository) GetCategory(context context.Context, id int) (*Category, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.ContentCategory.ID, schema.ContentCategory.Name,
		schema.ContentCategory.ContentType, schema.ContentCategory.CreatedAt,
		schema.ContentCategory.Table, schema.ContentCategory.ID,
	)

	c := &Category{}
	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.Name, &c.ContentType, &c.CreatedAt)
	return c, dberr.Wrap(err, "get_category")
}

func (repository *PostgresRepository) CreateCategory(context context.Context, c *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		RETURNING %s, %s
	`,
		schema.ContentCategory.Table, schema.ContentCategory.Name,
		schema.ContentCategory.ContentType, schema.ContentCategory.CreatedAt,
		schema.ContentCategory.ID, schema.ContentCategory.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, c.Name, c.ContentType).Scan(&c.ID, &c.CreatedAt)
	return dberr.Wrap(err, "create_category")
}

// DeleteCategory removes the category row. Junction rows cascade via the
// ON DELETE CASCADE constraints in the migrations.
func (repository *PostgresRepository) DeleteCategory(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentCategory.Table, schema.ContentCategory.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
