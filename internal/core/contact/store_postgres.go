// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package contact

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

func (repository *PostgresRepository) CreateMessage(context context.Context, m *Message) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		schema.InboxContactMessage.Table,
		schema.InboxContactMessage.Name, schema.InboxContactMessage.Email,
		schema.InboxContactMessage.Message, schema.InboxContactMessage.CreatedAt,
		schema.InboxContactMessage.ID, schema.InboxContactMessage.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, m.Name, m.Email, m.Message).Scan(&m.ID, &m.CreatedAt)
	return dberr.Wrap(err, "create_contact_message")
}

func (repository *PostgresRepository) ListMessages(context context.Context, limit, offset int) ([]*Message, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.InboxContactMessage.Table)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_contact_messages")
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.InboxContactMessage.ID, schema.InboxContactMessage.Name,
		schema.InboxContactMessage.Email, schema.InboxContactMessage.Message,
		schema.InboxContactMessage.CreatedAt,
		schema.InboxContactMessage.Table,
		schema.InboxContactMessage.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_contact_messages")
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		m := &Message{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_contact_message")
		}
		messages = append(messages, m)
	}

	return messages, total, nil
}

func (repository *PostgresRepository) DeleteMessage(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.InboxContactMessage.Table, schema.InboxContactMessage.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_contact_message")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
