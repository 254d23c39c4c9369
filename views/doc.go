// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package views provides the server-side HTML components of the site.

Components implement templ.Component and are rendered by the handlers in
server/routes. Text from the content table and chrome strings from i18n are
always escaped; only icon SVGs loaded from the embedded filesystem are written
raw.
*/
package views
