// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
This package defines the cookie names used by this application.
*/
package cookie

type CookieName string

// Cookie names defined as constants.
//
// NOTE: We don't use the `__Host-` prefix so that the cookie keeps working on
// plain HTTP deployments behind a LAN reverse proxy.
const (
	// LangCookie stores the visitor's chosen locale, e.g. "en".
	LangCookie CookieName = "Lang"
)

