// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/myosh4423/portfolio/core/cookie"
	"codeberg.org/myosh4423/portfolio/core/untrusted"
	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/utils"
)

// SetLanguage is the handler for POST /settings/lang.
//
// It stores the normalized form value "lang" in the language cookie and
// redirects to the page of that locale.
func SetLanguage(w http.ResponseWriter, r *http.Request) error {
	locale := i18n.Normalize(utils.GetFormValue(r, i18n.LangParam))

	untrusted.SetCookie(w, r, cookie.LangCookie, locale.String())

	http.Redirect(w, r, "/"+locale.String(), http.StatusSeeOther)

	return nil
}
