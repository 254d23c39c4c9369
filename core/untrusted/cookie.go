// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package untrusted

import (
	"net/http"
	"net/url"
	"time"

	"codeberg.org/myosh4423/portfolio/core/cookie"
	"codeberg.org/myosh4423/portfolio/server/utils"
)

// SameSite=Lax keeps the preference on top-level navigations from other sites.
const CookieSameSite = http.SameSiteLaxMode

// Cookies will expire in one year from when they are set.
const cookieMaxAge = 365 * 24 * time.Hour

// Clear a cookie by setting its expiration date to this.
var cookieExpireDelete = time.Date(2009, time.November, 10, 23, 0, 0, 0, time.UTC)

func createCookieUnencoded(name cookie.CookieName, value string, expires time.Time, isSecure bool) http.Cookie {
	return http.Cookie{
		Name:     string(name),
		Value:    value,
		Path:     "/",
		Expires:  expires,
		Secure:   isSecure,
		HttpOnly: true,
		SameSite: CookieSameSite,
	}
}

// GetCookie returns the unescaped value of the named cookie, or "" if it is
// absent or malformed.
func GetCookie(r *http.Request, name cookie.CookieName) string {
	c, err := r.Cookie(string(name))
	if err != nil {
		return ""
	}

	value, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}

	return value
}

// SetCookie stores value in the named cookie. An empty value clears it.
func SetCookie(w http.ResponseWriter, r *http.Request, name cookie.CookieName, value string) {
	if value == "" {
		ClearCookie(w, r, name)

		return
	}

	c := createCookieUnencoded(
		name, url.QueryEscape(value),
		time.Now().Add(cookieMaxAge),
		utils.IsConnectionSecure(r))
	http.SetCookie(w, &c)
}

func ClearCookie(w http.ResponseWriter, r *http.Request, name cookie.CookieName) {
	c := createCookieUnencoded(
		name, "",
		cookieExpireDelete,
		utils.IsConnectionSecure(r))
	http.SetCookie(w, &c)
}
