// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

package logging

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// AuthEvent is a security-relevant authentication outcome.
type AuthEvent struct {
	// Event is the event name, e.g. "login_success", "login_failed", "token_rejected".
	Event  string
	UserID string
	Email  string
	IP     string
	// Reason is the internal failure reason. It is logged, never returned to clients.
	Reason  string
	Success bool
}

// SecurityLogger writes authentication events with sensitive values masked.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger returns a logger tagged component=auth.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{logger: WithComponent("auth")}
}

// LogEvent writes ev. Failures are logged at warn level.
func (l *SecurityLogger) LogEvent(ctx context.Context, ev *AuthEvent) {
	e := l.logger.Info()
	status := "success"
	if !ev.Success {
		e = l.logger.Warn()
		status = "failed"
	}
	e = e.Str("event", ev.Event).Str("status", status)

	if id := RequestIDFromContext(ctx); id != "" {
		e = e.Str("request_id", id)
	}
	if ev.UserID != "" {
		e = e.Str("user_id", ev.UserID)
	}
	if ev.Email != "" {
		e = e.Str("email", SanitizeEmail(ev.Email))
	}
	if ev.IP != "" {
		e = e.Str("ip", ev.IP)
	}
	if ev.Reason != "" && !ev.Success {
		e = e.Str("reason", SanitizeError(ev.Reason))
	}
	e.Msg("")
}

// LogLoginSuccess records a successful login.
func (l *SecurityLogger) LogLoginSuccess(ctx context.Context, userID, email, ip string) {
	l.LogEvent(ctx, &AuthEvent{Event: "login_success", UserID: userID, Email: email, IP: ip, Success: true})
}

// LogLoginFailure records a rejected login.
func (l *SecurityLogger) LogLoginFailure(ctx context.Context, email, ip, reason string) {
	l.LogEvent(ctx, &AuthEvent{Event: "login_failed", Email: email, IP: ip, Reason: reason})
}

// LogTokenRejected records a request rejected by the token gate.
func (l *SecurityLogger) LogTokenRejected(ctx context.Context, ip, reason string) {
	l.LogEvent(ctx, &AuthEvent{Event: "token_rejected", IP: ip, Reason: reason})
}

// SanitizeEmail masks the local part of an email address.
// "john.doe@example.com" becomes "jo***@example.com".
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	local, domain := email[:at], email[at:]
	if len(local) <= 2 {
		return "***" + domain
	}
	return local[:2] + "***" + domain
}

var sensitiveErrorWords = []string{"password", "secret", "bearer", "authorization"}

// SanitizeError drops messages that may embed credentials and truncates
// the rest.
func SanitizeError(msg string) string {
	lower := strings.ToLower(msg)
	for _, w := range sensitiveErrorWords {
		if strings.Contains(lower, w) {
			return "authentication error"
		}
	}
	return truncateString(msg, 200)
}

// SanitizeLogValue strips control characters so user input cannot
// forge log lines, and truncates long values.
func SanitizeLogValue(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	return truncateString(s, 200)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
