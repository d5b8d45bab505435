// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

/*
Package auth manages dashboard admin accounts and access tokens.

# Flow

Login exchanges username/password for an RS256 access token. The token
carries the account id, username and role; the authentication middleware
reconstructs the admin context from it without a database round trip.

A seed bootstrap runs at startup so a fresh deployment always has one
usable admin account.
*/
package auth

import "time"

// Account is one dashboard login.
type Account struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginInput is the login request payload.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginOutput is the login response payload.
type LoginOutput struct {
	AccessToken string   `json:"access_token"`
	Account     *Account `json:"account"`
}

// ChangePasswordInput is the password rotation payload.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
)
