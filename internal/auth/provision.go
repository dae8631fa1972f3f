// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/insightboard/internal/database"
	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/models"
	"github.com/tomtom215/insightboard/internal/validation"
)

// AdminAccount describes the account created at startup from configuration.
type AdminAccount struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserProvisioner reads and creates accounts.
type UserProvisioner interface {
	UserStore
	CreateUser(ctx context.Context, user *models.User) error
}

// EnsureAdmin creates the admin account unless an account with the same
// email already exists. It reports whether an account was created.
// Existing accounts are left untouched, password included.
func EnsureAdmin(ctx context.Context, store UserProvisioner, acct AdminAccount, bcryptCost int) (bool, error) {
	if verr := validation.ValidateStruct(acct); verr != nil {
		return false, fmt.Errorf("invalid admin account: %w", verr)
	}

	_, err := store.GetUserByEmail(ctx, acct.Email)
	if err == nil {
		logging.Info().Str("email", logging.SanitizeEmail(acct.Email)).Msg("Admin account already exists")
		return false, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return false, fmt.Errorf("failed to look up admin account: %w", err)
	}

	hash, err := HashPassword(acct.Password, bcryptCost)
	if err != nil {
		return false, err
	}

	user := &models.User{
		Username:     acct.Username,
		Email:        acct.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := store.CreateUser(ctx, user); err != nil {
		return false, fmt.Errorf("failed to create admin account: %w", err)
	}

	logging.Info().
		Str("user_id", user.ID).
		Str("email", logging.SanitizeEmail(acct.Email)).
		Msg("Admin account created")
	return true, nil
}
