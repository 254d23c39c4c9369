// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware chain for the portfolio server.

Every middleware has the Middleware signature and is composed with Wrap by the
router. Handlers that can fail are adapted with CatchError, which buffers their
output and renders the localized error page when they return an error.
*/
package middleware
