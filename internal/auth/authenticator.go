// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/insightboard/internal/database"
	"github.com/tomtom215/insightboard/internal/metrics"
	"github.com/tomtom215/insightboard/internal/models"
)

// UserStore looks accounts up by email.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	User      models.PublicUser
}

// Authenticator verifies credentials and session tokens.
type Authenticator struct {
	users     UserStore
	tokens    *JWTManager
	dummyHash string
}

// NewAuthenticator creates an Authenticator. bcryptCost should match the
// cost stored hashes were created with; it sizes the comparison performed
// for unknown emails so both failure paths take similar time.
func NewAuthenticator(users UserStore, tokens *JWTManager, bcryptCost int) (*Authenticator, error) {
	dummy, err := HashPassword("insightboard-unknown-account", bcryptCost)
	if err != nil {
		return nil, err
	}
	return &Authenticator{
		users:     users,
		tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

// Login checks email and password and mints a session token.
//
// An unknown email and a wrong password both return ErrInvalidCredentials.
// Store failures are returned wrapped and must be reported as server errors.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			ComparePassword(a.dummyHash, password)
			metrics.RecordLogin("failure")
			return nil, ErrInvalidCredentials
		}
		metrics.RecordLogin("error")
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !ComparePassword(user.PasswordHash, password) {
		metrics.RecordLogin("failure")
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		metrics.RecordLogin("error")
		return nil, err
	}

	metrics.RecordLogin("success")
	return &LoginResult{
		Token:     token.Value,
		IssuedAt:  token.IssuedAt,
		ExpiresAt: token.ExpiresAt,
		User:      user.Public(),
	}, nil
}

// Authenticate verifies a session token. It never touches the user store.
func (a *Authenticator) Authenticate(token string) (*Principal, error) {
	return a.tokens.ValidateToken(token)
}
