// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/insightboard/internal/auth"
	"github.com/tomtom215/insightboard/internal/config"
	"github.com/tomtom215/insightboard/internal/database"
	"github.com/tomtom215/insightboard/internal/filter"
	"github.com/tomtom215/insightboard/internal/models"
)

const (
	testSecret   = "api_test_secret_that_is_long_enough_for_hs256_signing"
	testEmail    = "admin@example.com"
	testPassword = "correct-horse-battery"
)

// testServer bundles the router under test with the pieces tests poke at.
type testServer struct {
	handler http.Handler
	db      *database.DB
	tokens  *auth.JWTManager
	auth    *auth.Authenticator
	cfg     *config.Config
}

func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			JWTSecret:      testSecret,
			SessionTimeout: time.Hour,
			BcryptCost:     bcrypt.MinCost,
		},
		API: config.APIConfig{DefaultLimit: 1000, MaxLimit: 5000},
	}
}

// newTestDB opens an in-memory DuckDB store.
func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(&config.DatabaseConfig{
		Driver:      config.DriverDuckDB,
		Path:        ":memory:",
		MaxMemory:   "256MB",
		Threads:     1,
		SkipIndexes: true,
	})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

// newTestServer builds the full router over a fresh store with one admin
// account. chiCfg may be nil for defaults.
func newTestServer(t *testing.T, chiCfg *ChiMiddlewareConfig) *testServer {
	t.Helper()
	cfg := testConfig()
	db := newTestDB(t)

	if _, err := auth.EnsureAdmin(context.Background(), db, auth.AdminAccount{
		Username: "admin",
		Email:    testEmail,
		Password: testPassword,
	}, bcrypt.MinCost); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}

	return buildTestServer(t, cfg, db, db, chiCfg)
}

func buildTestServer(t *testing.T, cfg *config.Config, store Store, users auth.UserStore, chiCfg *ChiMiddlewareConfig) *testServer {
	t.Helper()
	tokens, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	authenticator, err := auth.NewAuthenticator(users, tokens, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewAuthenticator() error = %v", err)
	}

	handler := NewHandler(store, authenticator, cfg)
	router := NewRouter(handler, auth.NewMiddleware(authenticator), NewChiMiddleware(chiCfg), nil)

	ts := &testServer{handler: router.SetupChi(), tokens: tokens, auth: authenticator, cfg: cfg}
	if db, ok := store.(*database.DB); ok {
		ts.db = db
	}
	return ts
}

// behindProxies rebuilds the router over the same store and
// authenticator, honoring forwarded headers from the given proxies.
func (ts *testServer) behindProxies(chiCfg *ChiMiddlewareConfig, proxies ...string) http.Handler {
	handler := NewHandler(ts.db, ts.auth, ts.cfg)
	return NewRouter(handler, auth.NewMiddleware(ts.auth), NewChiMiddleware(chiCfg), proxies).SetupChi()
}

// token mints a valid bearer token for the admin account.
func (ts *testServer) token(t *testing.T) string {
	t.Helper()
	tok, err := ts.tokens.GenerateToken("admin-id", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return tok.Value
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) get(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return ts.do(req)
}

func (ts *testServer) postJSON(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return ts.do(req)
}

func (ts *testServer) seed(t *testing.T, reports ...models.Report) {
	t.Helper()
	if ts.db == nil {
		t.Fatal("seed requires a database-backed server")
	}
	if err := ts.db.InsertReports(context.Background(), reports); err != nil {
		t.Fatalf("InsertReports() error = %v", err)
	}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[models.MessageResponse](t, rec).Message
}

var errStoreDown = errors.New("connection refused: 10.0.0.5:5432 password=hunter2")

// failingStore fails every call.
type failingStore struct{}

func (failingStore) ListReports(context.Context, filter.Spec, int) ([]models.Report, error) {
	return nil, errStoreDown
}

func (failingStore) IntensityBySector(context.Context) ([]models.SectorIntensity, error) {
	return nil, errStoreDown
}

func (failingStore) LikelihoodByRegion(context.Context) ([]models.RegionLikelihood, error) {
	return nil, errStoreDown
}

func (failingStore) RelevanceByCountry(context.Context) ([]models.CountryRelevance, error) {
	return nil, errStoreDown
}

func (failingStore) MetricsByYear(context.Context) ([]models.YearMetrics, error) {
	return nil, errStoreDown
}

func (failingStore) TopicDistribution(context.Context) ([]models.TopicStats, error) {
	return nil, errStoreDown
}

func (failingStore) FilterOptions(context.Context) (*models.FilterOptions, error) {
	return nil, errStoreDown
}

func (failingStore) Ping(context.Context) error { return errStoreDown }

// failingUsers fails every lookup.
type failingUsers struct{}

func (failingUsers) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, errStoreDown
}
