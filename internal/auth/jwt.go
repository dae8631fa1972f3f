// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomtom215/insightboard/internal/config"
)

// Claims represents JWT claims. Subject carries the user id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Principal is the verified identity attached to an authenticated request.
type Principal struct {
	UserID string
	Role   string
}

// Token is a signed session token with its validity window.
type Token struct {
	Value     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// JWTManager handles JWT token creation and validation
type JWTManager struct {
	secret  []byte
	timeout time.Duration
	now     func() time.Time
}

// JWTOption configures a JWTManager.
type JWTOption func(*JWTManager)

// WithClock overrides the time source used for issuing and checking tokens.
func WithClock(now func() time.Time) JWTOption {
	return func(m *JWTManager) {
		m.now = now
	}
}

// NewJWTManager creates a new JWT token manager with the configured secret and timeout.
//
// Security Requirements:
//   - JWT_SECRET must be non-empty (config validation enforces 32+ characters)
//   - Uses HS256 signing algorithm; tokens signed with any other algorithm are rejected
//
// Example:
//
//	jwtManager, err := auth.NewJWTManager(&cfg.Security)
//	if err != nil {
//	    return fmt.Errorf("failed to initialize JWT manager: %w", err)
//	}
func NewJWTManager(cfg *config.SecurityConfig, opts ...JWTOption) (*JWTManager, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}
	if cfg.SessionTimeout <= 0 {
		return nil, fmt.Errorf("session timeout must be positive, got %s", cfg.SessionTimeout)
	}

	m := &JWTManager{
		secret:  []byte(cfg.JWTSecret),
		timeout: cfg.SessionTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// TTL returns the configured token lifetime.
func (m *JWTManager) TTL() time.Duration {
	return m.timeout
}

// GenerateToken creates a signed token for the given user id and role.
//
// The issue time is truncated to whole seconds, matching the precision of
// JWT numeric dates, so the token is valid for exactly [IssuedAt, ExpiresAt).
//
// Token Claims:
//   - sub: user id
//   - role: carried for clients, not enforced
//   - iat, nbf: issue time
//   - exp: issue time + session timeout
func (m *JWTManager) GenerateToken(userID, role string) (*Token, error) {
	issuedAt := m.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(m.timeout)

	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{Value: signedToken, IssuedAt: issuedAt, ExpiresAt: expiresAt}, nil
}

// ValidateToken verifies a token and returns the principal it carries.
//
// Validation Steps:
//  1. Reject empty input with ErrTokenMissing
//  2. Parse the token, pinning HS256
//  3. Verify the signature against the secret
//  4. Require exp and check it against the manager's clock
//
// Errors wrap ErrTokenMissing, ErrTokenInvalid or ErrTokenExpired.
func (m *JWTManager) ValidateToken(tokenString string) (*Principal, error) {
	if tokenString == "" {
		return nil, ErrTokenMissing
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	return &Principal{UserID: claims.Subject, Role: claims.Role}, nil
}
