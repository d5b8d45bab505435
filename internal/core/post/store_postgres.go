// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package post

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
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

func (repository *PostgresRepository) ListPosts(context context.Context, f Filter, limit, offset int) ([]*Post, int, error) {
	base := fmt.Sprintf(`FROM %s p WHERE 1=1`, schema.ContentPost.Table)

	args := []any{}

	if f.Keyword != "" {
		args = append(args, "%"+f.Keyword+"%")
		base += fmt.Sprintf(" AND p.%s ILIKE $%d", schema.ContentPost.Title, len(args))
	}
	if f.CategoryID != 0 {
		args = append(args, f.CategoryID)
		base += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM %s pc WHERE pc.%s = p.%s AND pc.%s = $%d)",
			schema.ContentPostCategory.Table,
			schema.ContentPostCategory.PostID, schema.ContentPost.ID,
			schema.ContentPostCategory.CategoryID, len(args),
		)
	}
	if f.Date != "" {
		args = append(args, f.Date)
		base += fmt.Sprintf(" AND p.%s::date = $%d::date", schema.ContentPost.PublishedAt, len(args))
	}
	if f.Language != "" {
		args = append(args, f.Language)
		base += fmt.Sprintf(" AND p.%s = $%d", schema.ContentPost.Language, len(args))
	}

	var total int
	if err := repository.db.QueryRow(context, "SELECT count(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_posts")
	}

	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s
		%s
		ORDER BY p.%s DESC
		LIMIT $%d OFFSET $%d
	`,
		schema.ContentPost.ID, schema.ContentPost.Title, schema.ContentPost.Body,
		schema.ContentPost.Tags, schema.ContentPost.Language,
		schema.ContentPost.PublishedAt, schema.ContentPost.CreatedAt,
		base,
		schema.ContentPost.PublishedAt, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_posts")
	}
	defer rows.Close()

	var posts []*Post
	for rows.Next() {
		p := &Post{Categories: []Assigned{}}
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.Tags, &p.Language, &p.PublishedAt, &p.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_post")
		}
		posts = append(posts, p)
	}

	if err := repository.attachCategories(context, posts); err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (repository *PostgresRepository) GetPost(context context.Context, id int) (*Post, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.ContentPost.ID, schema.ContentPost.Title, schema.ContentPost.Body,
		schema.ContentPost.Tags, schema.ContentPost.Language,
		schema.ContentPost.PublishedAt, schema.ContentPost.CreatedAt,
		schema.ContentPost.Table, schema.ContentPost.ID,
	)

	p := &Post{Categories: []Assigned{}}
	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.Title, &p.Body, &p.Tags, &p.Language, &p.PublishedAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_post")
	}

	if err := repository.attachCategories(context, []*Post{p}); err != nil {
		return nil, err
	}

	return p, nil
}

func (repository *PostgresRepository) CreatePost(context context.Context, p *Post, categoryIDs []int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s, %s
	`,
		schema.ContentPost.Table,
		schema.ContentPost.Title, schema.ContentPost.Body, schema.ContentPost.Tags,
		schema.ContentPost.Language, schema.ContentPost.PublishedAt,
		schema.ContentPost.CreatedAt,
		schema.ContentPost.ID, schema.ContentPost.CreatedAt,
	)

	err = transaction.QueryRow(context, query,
		p.Title, p.Body, p.Tags, p.Language, p.PublishedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_post")
	}

	if err := replaceCategories(context, transaction, p.ID, categoryIDs); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "create_post_commit")
	}
	return nil
}

func (repository *PostgresRepository) UpdatePost(context context.Context, p *Post, categoryIDs []int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
	`,
		schema.ContentPost.Table,
		schema.ContentPost.Title, schema.ContentPost.Body, schema.ContentPost.Tags,
		schema.ContentPost.Language, schema.ContentPost.PublishedAt,
		schema.ContentPost.ID,
	)

	cmd, err := transaction.Exec(context, query,
		p.ID, p.Title, p.Body, p.Tags, p.Language, p.PublishedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_post")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := replaceCategories(context, transaction, p.ID, categoryIDs); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "update_post_commit")
	}
	return nil
}

func (repository *PostgresRepository) DeletePost(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentPost.Table, schema.ContentPost.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// attachCategories loads assignments for a batch of posts in one query,
// ordered by junction id so index 0 is the display category.
func (repository *PostgresRepository) attachCategories(context context.Context, posts []*Post) error {
	if len(posts) == 0 {
		return nil
	}

	byID := make(map[int]*Post, len(posts))
	ids := make([]int, 0, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query := fmt.Sprintf(`
		SELECT pc.%s, c.%s, c.%s
		FROM %s pc
		JOIN %s c ON c.%s = pc.%s
		WHERE pc.%s = ANY($1)
		ORDER BY pc.%s ASC
	`,
		schema.ContentPostCategory.PostID, schema.ContentCategory.ID, schema.ContentCategory.Name,
		schema.ContentPostCategory.Table,
		schema.ContentCategory.Table, schema.ContentCategory.ID, schema.ContentPostCategory.CategoryID,
		schema.ContentPostCategory.PostID,
		schema.ContentPostCategory.ID,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_post_categories")
	}
	defer rows.Close()

	for rows.Next() {
		var postID int
		var assigned Assigned
		if err := rows.Scan(&postID, &assigned.ID, &assigned.Name); err != nil {
			return dberr.Wrap(err, "scan_post_category")
		}
		if p, ok := byID[postID]; ok {
			p.Categories = append(p.Categories, assigned)
		}
	}

	return nil
}

// replaceCategories swaps the stored junction set for exactly categoryIDs,
// inserting one row at a time so junction ids preserve the given order.
func replaceCategories(context context.Context, transaction pgx.Tx, postID int, categoryIDs []int) error {
	clear := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentPostCategory.Table, schema.ContentPostCategory.PostID,
	)
	if _, err := transaction.Exec(context, clear, postID); err != nil {
		return dberr.Wrap(err, "clear_post_categories")
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.ContentPostCategory.Table,
		schema.ContentPostCategory.PostID, schema.ContentPostCategory.CategoryID,
	)
	for _, categoryID := range categoryIDs {
		if _, err := transaction.Exec(context, insert, postID, categoryID); err != nil {
			return dberr.Wrap(err, "assign_post_category_"+strconv.Itoa(categoryID))
		}
	}

	return nil
}
