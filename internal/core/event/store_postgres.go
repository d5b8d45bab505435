// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package event

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

func (repository *PostgresRepository) ListEvents(context context.Context, f Filter, limit, offset int) ([]*Event, int, error) {
	base := fmt.Sprintf(`FROM %s e WHERE 1=1`, schema.ContentEvent.Table)

	args := []any{}

	if f.Keyword != "" {
		args = append(args, "%"+f.Keyword+"%")
		base += fmt.Sprintf(" AND e.%s ILIKE $%d", schema.ContentEvent.Title, len(args))
	}
	if f.CategoryID != 0 {
		args = append(args, f.CategoryID)
		base += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM %s ec WHERE ec.%s = e.%s AND ec.%s = $%d)",
			schema.ContentEventCategory.Table,
			schema.ContentEventCategory.EventID, schema.ContentEvent.ID,
			schema.ContentEventCategory.CategoryID, len(args),
		)
	}
	if f.Date != "" {
		args = append(args, f.Date)
		base += fmt.Sprintf(" AND e.%s::date = $%d::date", schema.ContentEvent.EventDate, len(args))
	}
	if f.Language != "" {
		args = append(args, f.Language)
		base += fmt.Sprintf(" AND e.%s = $%d", schema.ContentEvent.Language, len(args))
	}

	var total int
	if err := repository.db.QueryRow(context, "SELECT count(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_events")
	}

	query := fmt.Sprintf(`
		SELECT e.%s, e.%s, e.%s, e.%s, e.%s, e.%s, e.%s, e.%s
		%s
		ORDER BY e.%s DESC
		LIMIT $%d OFFSET $%d
	`,
		schema.ContentEvent.ID, schema.ContentEvent.Title, schema.ContentEvent.Description,
		schema.ContentEvent.Location, schema.ContentEvent.Tags, schema.ContentEvent.Language,
		schema.ContentEvent.EventDate, schema.ContentEvent.CreatedAt,
		base,
		schema.ContentEvent.EventDate, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{Categories: []Assigned{}}
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.Tags, &e.Language, &e.EventDate, &e.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_event")
		}
		events = append(events, e)
	}

	if err := repository.attachCategories(context, events); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (repository *PostgresRepository) GetEvent(context context.Context, id int) (*Event, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.ContentEvent.ID, schema.ContentEvent.Title, schema.ContentEvent.Description,
		schema.ContentEvent.Location, schema.ContentEvent.Tags, schema.ContentEvent.Language,
		schema.ContentEvent.EventDate, schema.ContentEvent.CreatedAt,
		schema.ContentEvent.Table, schema.ContentEvent.ID,
	)

	e := &Event{Categories: []Assigned{}}
	err := repository.db.QueryRow(context, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Location, &e.Tags, &e.Language, &e.EventDate, &e.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_event")
	}

	if err := repository.attachCategories(context, []*Event{e}); err != nil {
		return nil, err
	}

	return e, nil
}

func (repository *PostgresRepository) CreateEvent(context context.Context, e *Event, categoryIDs []int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s, %s
	`,
		schema.ContentEvent.Table,
		schema.ContentEvent.Title, schema.ContentEvent.Description, schema.ContentEvent.Location,
		schema.ContentEvent.Tags, schema.ContentEvent.Language, schema.ContentEvent.EventDate,
		schema.ContentEvent.CreatedAt,
		schema.ContentEvent.ID, schema.ContentEvent.CreatedAt,
	)

	err = transaction.QueryRow(context, query,
		e.Title, e.Description, e.Location, e.Tags, e.Language, e.EventDate,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_event")
	}

	if err := replaceCategories(context, transaction, e.ID, categoryIDs); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "create_event_commit")
	}
	return nil
}

func (repository *PostgresRepository) UpdateEvent(context context.Context, e *Event, categoryIDs []int) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7
		WHERE %s = $1
	`,
		schema.ContentEvent.Table,
		schema.ContentEvent.Title, schema.ContentEvent.Description, schema.ContentEvent.Location,
		schema.ContentEvent.Tags, schema.ContentEvent.Language, schema.ContentEvent.EventDate,
		schema.ContentEvent.ID,
	)

	cmd, err := transaction.Exec(context, query,
		e.ID, e.Title, e.Description, e.Location, e.Tags, e.Language, e.EventDate,
	)
	if err != nil {
		return dberr.Wrap(err, "update_event")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := replaceCategories(context, transaction, e.ID, categoryIDs); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "update_event_commit")
	}
	return nil
}

func (repository *PostgresRepository) DeleteEvent(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentEvent.Table, schema.ContentEvent.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_event")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// attachCategories loads the assigned categories for a batch of events in a
// single query, ordered by junction id so index 0 is the display category.
func (repository *PostgresRepository) attachCategories(context context.Context, events []*Event) error {
	if len(events) == 0 {
		return nil
	}

	byID := make(map[int]*Event, len(events))
	ids := make([]int, 0, len(events))
	for _, e := range events {
		byID[e.ID] = e
		ids = append(ids, e.ID)
	}

	query := fmt.Sprintf(`
		SELECT ec.%s, c.%s, c.%s
		FROM %s ec
		JOIN %s c ON c.%s = ec.%s
		WHERE ec.%s = ANY($1)
		ORDER BY ec.%s ASC
	`,
		schema.ContentEventCategory.EventID, schema.ContentCategory.ID, schema.ContentCategory.Name,
		schema.ContentEventCategory.Table,
		schema.ContentCategory.Table, schema.ContentCategory.ID, schema.ContentEventCategory.CategoryID,
		schema.ContentEventCategory.EventID,
		schema.ContentEventCategory.ID,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_event_categories")
	}
	defer rows.Close()

	for rows.Next() {
		var eventID int
		var assigned Assigned
		if err := rows.Scan(&eventID, &assigned.ID, &assigned.Name); err != nil {
			return dberr.Wrap(err, "scan_event_category")
		}
		if e, ok := byID[eventID]; ok {
			e.Categories = append(e.Categories, assigned)
		}
	}

	return nil
}

// replaceCategories swaps the stored junction set for exactly categoryIDs,
// inserting one row at a time so junction ids preserve the given order.
func replaceCategories(context context.Context, transaction pgx.Tx, eventID int, categoryIDs []int) error {
	clear := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentEventCategory.Table, schema.ContentEventCategory.EventID,
	)
	if _, err := transaction.Exec(context, clear, eventID); err != nil {
		return dberr.Wrap(err, "clear_event_categories")
	}

	insert := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.ContentEventCategory.Table,
		schema.ContentEventCategory.EventID, schema.ContentEventCategory.CategoryID,
	)
	for _, categoryID := range categoryIDs {
		if _, err := transaction.Exec(context, insert, eventID, categoryID); err != nil {
			return dberr.Wrap(err, "assign_event_category_"+strconv.Itoa(categoryID))
		}
	}

	return nil
}
