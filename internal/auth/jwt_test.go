// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomtom215/insightboard/internal/config"
)

const testSecret = "this_is_a_very_long_secret_key_for_testing_purposes_12345"

// fakeClock is a settable time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestJWTManager(t *testing.T, ttl time.Duration, clock *fakeClock) *JWTManager {
	t.Helper()
	cfg := &config.SecurityConfig{JWTSecret: testSecret, SessionTimeout: ttl}
	var opts []JWTOption
	if clock != nil {
		opts = append(opts, WithClock(clock.Now))
	}
	m, err := NewJWTManager(cfg, opts...)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	return m
}

func TestNewJWTManager(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.SecurityConfig
		wantErr bool
	}{
		{
			name:    "valid secret",
			cfg:     &config.SecurityConfig{JWTSecret: testSecret, SessionTimeout: 24 * time.Hour},
			wantErr: false,
		},
		{
			name:    "empty secret",
			cfg:     &config.SecurityConfig{JWTSecret: "", SessionTimeout: 24 * time.Hour},
			wantErr: true,
		},
		{
			name:    "zero timeout",
			cfg:     &config.SecurityConfig{JWTSecret: testSecret},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, err := NewJWTManager(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("NewJWTManager() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewJWTManager() unexpected error = %v", err)
			}
			if manager.TTL() != tt.cfg.SessionTimeout {
				t.Errorf("TTL() = %v, want %v", manager.TTL(), tt.cfg.SessionTimeout)
			}
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := newTestJWTManager(t, time.Hour, nil)

	token, err := m.GenerateToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if strings.Count(token.Value, ".") != 2 {
		t.Errorf("token %q is not a compact JWS", token.Value)
	}
	if got := token.ExpiresAt.Sub(token.IssuedAt); got != time.Hour {
		t.Errorf("ExpiresAt - IssuedAt = %v, want 1h", got)
	}

	p, err := m.ValidateToken(token.Value)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if p.UserID != "user-1" || p.Role != "admin" {
		t.Errorf("ValidateToken() = %+v, want user-1/admin", p)
	}
}

func TestValidateToken_AcceptanceWindow(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ttl := 24 * time.Hour
	clock := &fakeClock{now: issued}
	m := newTestJWTManager(t, ttl, clock)

	token, err := m.GenerateToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name    string
		at      time.Time
		wantErr error
	}{
		{"at issue time", issued, nil},
		{"midway", issued.Add(ttl / 2), nil},
		{"one second before expiry", issued.Add(ttl - time.Second), nil},
		{"just before expiry", issued.Add(ttl - time.Nanosecond), nil},
		{"at expiry", issued.Add(ttl), ErrTokenExpired},
		{"after expiry", issued.Add(ttl + time.Minute), ErrTokenExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.now = tt.at
			_, err := m.ValidateToken(token.Value)
			if tt.wantErr == nil && err != nil {
				t.Errorf("ValidateToken() at %v error = %v, want nil", tt.at, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateToken() at %v error = %v, want %v", tt.at, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateToken_TruncatesIssueTime(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 750_000_000, time.UTC)}
	m := newTestJWTManager(t, time.Minute, clock)

	token, err := m.GenerateToken("u", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token.IssuedAt.Nanosecond() != 0 {
		t.Errorf("IssuedAt = %v, want whole seconds", token.IssuedAt)
	}
}

func TestValidateToken_Rejections(t *testing.T) {
	m := newTestJWTManager(t, time.Hour, nil)
	valid, err := m.GenerateToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other := newTestJWTManager(t, time.Hour, nil)
	other.secret = []byte("a_completely_different_secret_value_with_length")
	foreign, err := other.GenerateToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	hs512Token, err := hs512.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noneToken, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString(none) error = %v", err)
	}

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	})
	noExpToken, err := noExp.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	parts := strings.Split(valid.Value, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", ErrTokenMissing},
		{"garbage", "not-a-token", ErrTokenInvalid},
		{"tampered payload", tampered, ErrTokenInvalid},
		{"wrong secret", foreign.Value, ErrTokenInvalid},
		{"other HMAC algorithm", hs512Token, ErrTokenInvalid},
		{"alg none", noneToken, ErrTokenInvalid},
		{"missing exp", noExpToken, ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := m.ValidateToken(tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateToken() error = %v, want %v", err, tt.wantErr)
			}
			if p != nil {
				t.Errorf("ValidateToken() principal = %+v, want nil", p)
			}
		})
	}
}
