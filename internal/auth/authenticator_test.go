// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T, store UserStore, clock *fakeClock) *Authenticator {
	t.Helper()
	a, err := NewAuthenticator(store, newTestJWTManager(t, 24*time.Hour, clock), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewAuthenticator() error = %v", err)
	}
	return a
}

func TestLogin_Success(t *testing.T) {
	store := newMemoryUserStore()
	store.addUser(t, "u-1", "admin@example.com", "correct horse")
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	a := newTestAuthenticator(t, store, clock)

	result, err := a.Login(context.Background(), "admin@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Token == "" {
		t.Fatal("Login() returned empty token")
	}
	if result.User.ID != "u-1" || result.User.Email != "admin@example.com" || result.User.Role != "admin" {
		t.Errorf("Login() user = %+v", result.User)
	}
	if !result.ExpiresAt.Equal(clock.now.Add(24 * time.Hour)) {
		t.Errorf("ExpiresAt = %v, want %v", result.ExpiresAt, clock.now.Add(24*time.Hour))
	}

	p, err := a.Authenticate(result.Token)
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if p.UserID != "u-1" {
		t.Errorf("Authenticate() UserID = %q, want u-1", p.UserID)
	}
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	store := newMemoryUserStore()
	store.addUser(t, "u-1", "admin@example.com", "correct horse")
	a := newTestAuthenticator(t, store, nil)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@example.com", "battery staple"},
		{"unknown email", "nobody@example.com", "correct horse"},
		{"empty password", "admin@example.com", ""},
		{"email differs in case", "Admin@example.com", "correct horse"},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := a.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
			}
			if result != nil {
				t.Errorf("Login() result = %+v, want nil", result)
			}
			messages = append(messages, err.Error())
		})
	}

	for _, m := range messages {
		if m != messages[0] {
			t.Errorf("failure messages differ: %q vs %q", m, messages[0])
		}
	}
}

func TestLogin_StoreFailureIsNotInvalidCredentials(t *testing.T) {
	store := newMemoryUserStore()
	store.err = errors.New("connection refused")
	a := newTestAuthenticator(t, store, nil)

	_, err := a.Login(context.Background(), "admin@example.com", "pw")
	if err == nil {
		t.Fatal("Login() expected error")
	}
	if errors.Is(err, ErrInvalidCredentials) {
		t.Error("store failure must not be reported as invalid credentials")
	}
}

func TestAuthenticate_DoesNotTouchStore(t *testing.T) {
	store := newMemoryUserStore()
	a := newTestAuthenticator(t, store, nil)

	if _, err := a.Authenticate(""); !errors.Is(err, ErrTokenMissing) {
		t.Errorf("Authenticate(\"\") error = %v, want ErrTokenMissing", err)
	}
	if _, err := a.Authenticate("garbage"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Authenticate(garbage) error = %v, want ErrTokenInvalid", err)
	}
	if n := store.lookupCount(); n != 0 {
		t.Errorf("store lookups = %d, want 0", n)
	}
}

func TestPasswordHelpers(t *testing.T) {
	hash, err := HashPassword("s3cret-password", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !ComparePassword(hash, "s3cret-password") {
		t.Error("ComparePassword() = false for matching password")
	}
	if ComparePassword(hash, "wrong") {
		t.Error("ComparePassword() = true for wrong password")
	}
	if ComparePassword("not-a-hash", "s3cret-password") {
		t.Error("ComparePassword() = true for malformed hash")
	}

	fallback, err := HashPassword("pw", 99)
	if err != nil {
		t.Fatalf("HashPassword() with out-of-range cost error = %v", err)
	}
	cost, err := bcrypt.Cost([]byte(fallback))
	if err != nil || cost != bcrypt.DefaultCost {
		t.Errorf("fallback cost = %d, %v; want %d", cost, err, bcrypt.DefaultCost)
	}
}
