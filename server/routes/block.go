// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/myosh4423/portfolio/server/request_context"
)

// BlockPage renders the localized error page for a request refused by the
// rate limiter, with statusCode 403 or 429.
func BlockPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	request_context.FromRequest(r).StatusCode = statusCode

	ErrorPage(w, r)
}
