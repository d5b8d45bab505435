// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package auth

import "context"

// Repository defines the data access contract for admin accounts.
type Repository interface {
	GetAccountByUsername(context context.Context, username string) (*Account, error)
	GetAccountByID(context context.Context, id int) (*Account, error)
	CreateAccount(context context.Context, account *Account) error
	UpdatePasswordHash(context context.Context, id int, passwordHash string) error
	CountAccounts(context context.Context) (int, error)
}
