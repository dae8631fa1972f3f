// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/insightboard/internal/logging"
	"github.com/tomtom215/insightboard/internal/metrics"
	"github.com/tomtom215/insightboard/internal/models"
)

// Client-facing 401 messages. Invalid and expired tokens share one message.
const (
	MessageAuthRequired = "Authentication required"
	MessageInvalidToken = "Invalid or expired token"
)

// TokenVerifier verifies session tokens.
type TokenVerifier interface {
	Authenticate(token string) (*Principal, error)
}

// Middleware gates protected routes behind a bearer token.
type Middleware struct {
	verifier TokenVerifier
	security *logging.SecurityLogger
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(verifier TokenVerifier) *Middleware {
	return &Middleware{
		verifier: verifier,
		security: logging.NewSecurityLogger(),
	}
}

// Authenticate is middleware that enforces authentication. On success the
// Principal is stored in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r.Header.Get("Authorization"))

		principal, err := m.verifier.Authenticate(token)
		if err != nil {
			reason := rejectionReason(err)
			metrics.RecordTokenRejection(reason)
			m.security.LogTokenRejected(r.Context(), r.RemoteAddr, reason)

			message := MessageInvalidToken
			if reason == "missing" {
				message = MessageAuthRequired
			}
			writeUnauthorized(w, message)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(r.Context(), principal)))
	})
}

// extractBearerToken returns the token of a "Bearer <token>" header, or ""
// when the header is absent or uses another scheme.
func extractBearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrTokenMissing):
		return "missing"
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	default:
		return "invalid"
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="insightboard"`)
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(models.MessageResponse{Message: message}); err != nil {
		logging.Error().Err(err).Msg("Failed to encode unauthorized response")
	}
}
