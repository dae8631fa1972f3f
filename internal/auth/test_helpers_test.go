// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package auth

import (
	"context"
	"sync"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/insightboard/internal/database"
	"github.com/tomtom215/insightboard/internal/models"
)

// memoryUserStore is an in-memory UserProvisioner.
type memoryUserStore struct {
	mu      sync.Mutex
	users   map[string]*models.User
	lookups int
	err     error
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[string]*models.User)}
}

func (s *memoryUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return nil, database.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *memoryUserStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if _, ok := s.users[user.Email]; ok {
		return database.ErrDuplicate
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	cp := *user
	s.users[user.Email] = &cp
	return nil
}

func (s *memoryUserStore) lookupCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookups
}

// addUser stores a user with a low-cost hash of password.
func (s *memoryUserStore) addUser(t *testing.T, id, email, password string) {
	t.Helper()
	hash, err := HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	s.users[email] = &models.User{
		ID:           id,
		Username:     "admin",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
}
