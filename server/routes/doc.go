// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package routes contains the HTTP handlers of the site.

Handlers return an error and are adapted by middleware.CatchError, which
renders ErrorPage for unhandled errors and 404s. Handlers serving an explicit
locale record it with request_context.SetLocale so that Content-Language and
the page chrome follow the served content.
*/
package routes
