// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package auth

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

func (repository *PostgresRepository) GetAccountByUsername(context context.Context, username string) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UsersAdminAccount.ID, schema.UsersAdminAccount.Username,
		schema.UsersAdminAccount.PasswordHash, schema.UsersAdminAccount.Role,
		schema.UsersAdminAccount.CreatedAt,
		schema.UsersAdminAccount.Table, schema.UsersAdminAccount.Username,
	)

	account := &Account{}
	err := repository.db.QueryRow(context, query, username).Scan(
		&account.ID, &account.Username, &account.PasswordHash, &account.Role, &account.CreatedAt,
	)
	return account, dberr.Wrap(err, "get_account_by_username")
}

func (repository *PostgresRepository) GetAccountByID(context context.Context, id int) (*Account, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UsersAdminAccount.ID, schema.UsersAdminAccount.Username,
		schema.UsersAdminAccount.PasswordHash, schema.UsersAdminAccount.Role,
		schema.UsersAdminAccount.CreatedAt,
		schema.UsersAdminAccount.Table, schema.UsersAdminAccount.ID,
	)

	account := &Account{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&account.ID, &account.Username, &account.PasswordHash, &account.Role, &account.CreatedAt,
	)
	return account, dberr.Wrap(err, "get_account_by_id")
}

func (repository *PostgresRepository) CreateAccount(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		schema.UsersAdminAccount.Table,
		schema.UsersAdminAccount.Username, schema.UsersAdminAccount.PasswordHash,
		schema.UsersAdminAccount.Role, schema.UsersAdminAccount.CreatedAt,
		schema.UsersAdminAccount.ID, schema.UsersAdminAccount.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		account.Username, account.PasswordHash, account.Role,
	).Scan(&account.ID, &account.CreatedAt)
	return dberr.Wrap(err, "create_account")
}

func (repository *PostgresRepository) UpdatePasswordHash(context context.Context, id int, passwordHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.UsersAdminAccount.Table,
		schema.UsersAdminAccount.PasswordHash, schema.UsersAdminAccount.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, passwordHash)
	if err != nil {
		return dberr.Wrap(err, "update_password_hash")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) CountAccounts(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.UsersAdminAccount.Table)

	var total int
	if err := repository.db.QueryRow(context, query).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_accounts")
	}
	return total, nil
}
