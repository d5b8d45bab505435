// Copyright (c) 2026 Eventide. All rights reserved.
// Author: duong.nk.dev@gmail.com

package auth

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/duongnk/eventide/internal/platform/apperr"
	"github.com/duongnk/eventide/internal/platform/constants"
	"github.com/duongnk/eventide/internal/platform/sec"
	"github.com/duongnk/eventide/internal/platform/validate"
)

type Service struct {
	repo   Repository
	tokens *sec.TokenService
	logger *slog.Logger
}

func NewService(repo Repository, tokens *sec.TokenService, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

/*
Login authenticates a dashboard account.

Description: The error for a wrong username and a wrong password is
identical so the endpoint cannot be used to probe for account names.

Parameters:
  - input: username and plain text password.

Returns:
  - *LoginOutput: a signed access token plus the account profile.
  - error: apperr.Unauthorized on any credential mismatch.
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginOutput, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username)
	validator.Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	account, err := service.repo.GetAccountByUsername(context, input.Username)
	if err != nil {
		service.logger.Warn("login_failed", slog.String("username", input.Username))
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		service.logger.Warn("login_failed", slog.String("username", input.Username))
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	token, err := service.tokens.GenerateAccessToken(
		strconv.Itoa(account.ID), account.Username, account.Role, constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.Info("login_succeeded", slog.String("username", account.Username))
	return &LoginOutput{AccessToken: token, Account: account}, nil
}

// ChangePassword rotates the caller's own password after verifying the
// current one.
func (service *Service) ChangePassword(context context.Context, accountID int, input ChangePasswordInput) error {
	validator := &validate.Validator{}
	validator.Required(FieldCurrentPassword, input.CurrentPassword)
	validator.Required(FieldNewPassword, input.NewPassword).MinLen(FieldNewPassword, input.NewPassword, 8)
	if err := validator.Err(); err != nil {
		return err
	}

	account, err := service.repo.GetAccountByID(context, accountID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(input.CurrentPassword, account.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hash, err := sec.HashPassword(input.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}

	if err := service.repo.UpdatePasswordHash(context, accountID, hash); err != nil {
		return err
	}

	service.logger.Info("password_changed", slog.Int("account_id", accountID))
	return nil
}

// Profile returns the account behind an authenticated request.
func (service *Service) Profile(context context.Context, accountID int) (*Account, error) {
	return service.repo.GetAccountByID(context, accountID)
}

// SeedDefaultAdmin creates the bootstrap admin account when no accounts
// exist yet. Called once at startup; a populated table is a no-op.
func (service *Service) SeedDefaultAdmin(context context.Context, username, password string) error {
	total, err := service.repo.CountAccounts(context)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	hash, err := sec.HashPassword(password)
	if err != nil {
		return err
	}

	account := &Account{
		Username:     username,
		PasswordHash: hash,
		Role:         string(sec.RoleAdmin),
	}
	if err := service.repo.CreateAccount(context, account); err != nil {
		return err
	}

	service.logger.Info("seeded default admin account", slog.String("username", username))
	return nil
}
