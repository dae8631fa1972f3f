// Insightboard - Survey Insight Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/insightboard

/*
Package auth verifies credentials and session tokens.

Key Components:

  - JWTManager: HS256 token issue and verification with an injectable clock
  - Authenticator: email/password login over a UserStore
  - Middleware: bearer-token gate for protected routes
  - EnsureAdmin: startup provisioning of the admin account
  - HashPassword/ComparePassword: bcrypt helpers

Tokens:

Tokens are stateless. A token carries the user id (sub), the role, and its
issue and expiry times. A token issued at T with session timeout D is
accepted for any check time in [T, T+D) and rejected from T+D on. Roles are
carried but not enforced.

Login:

An unknown email and a wrong password both produce ErrInvalidCredentials.
For an unknown email a bcrypt comparison against a dummy hash still runs so
response time does not reveal which accounts exist.

Usage Example:

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
	    return err
	}
	authenticator, err := auth.NewAuthenticator(db, jwtManager, cfg.Security.BcryptCost)
	if err != nil {
	    return err
	}

	result, err := authenticator.Login(ctx, email, password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
	    // 401
	}

	mw := auth.NewMiddleware(authenticator)
	r.With(mw.Authenticate).Get("/api/data", handler.Reports)

Middleware Responses:

Requests without a bearer token receive 401 {"message":"Authentication required"}.
Malformed, tampered and expired tokens receive 401
{"message":"Invalid or expired token"}. The store is never queried on this path.
*/
package auth
