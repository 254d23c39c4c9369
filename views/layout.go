// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/template/commondata"
)

// LayoutData is the document shell shared by every page.
type LayoutData struct {
	Locale      content.Locale
	HTMLLang    string
	Title       string
	Description string
	// Owner is shown in the footer copyright line.
	Owner  string
	Common commondata.PageCommonData
	// Alternates emits canonical and hreflang links. Error pages leave it off.
	Alternates bool
}

// layout renders the document around body.
func layout(data LayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw("<!DOCTYPE html>\n<html")
		h.attr("lang", data.HTMLLang)
		h.raw(">\n<head>\n")
		h.raw(`<meta charset="utf-8">`, "\n")
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`, "\n")
		h.raw("<title>")
		h.text(data.Title)
		h.raw("</title>\n")

		if data.Description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", data.Description)
			h.raw(">\n")
		}

		if data.Alternates {
			h.raw(`<link rel="canonical"`)
			h.attr("href", data.Common.LocaleURL(data.Locale))
			h.raw(">\n")

			for _, alt := range data.Common.AlternateLinks() {
				h.raw(`<link rel="alternate"`)
				h.attr("hreflang", alt.HrefLang)
				h.attr("href", alt.Href)
				h.raw(">\n")
			}
		}

		h.raw(`<link rel="stylesheet"`)
		h.attr("href", "/css/site.css?v="+data.Common.AssetVersion)
		h.raw(">\n</head>\n<body>\n")

		h.raw(`<a class="skip-link" href="#main">`)
		h.component(ctx, i18n.MsgKey("Skip to content"))
		h.raw("</a>\n")

		h.raw(`<main id="main">`, "\n")
		h.component(ctx, body)
		h.raw("</main>\n")

		h.raw("<footer>\n")
		h.component(ctx, languageSwitcher(data.Locale))

		if data.Owner != "" {
			h.raw(`<p class="copyright">`)
			h.text(i18n.Tr(ctx, "© {{.Year}} {{.Name}}", "Year", time.Now().Year(), "Name", data.Owner))
			h.raw("</p>\n")
		}

		if data.Common.RepoURL != "" {
			h.raw(`<p class="source"><a`)
			h.href(data.Common.RepoURL)
			h.raw(">source</a></p>\n")
		}

		h.raw("</footer>\n</body>\n</html>\n")

		return h.err
	})
}

// languageSwitcher posts the chosen locale to /settings/lang. It works
// without scripts.
func languageSwitcher(current content.Locale) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<form class="language-switcher" method="post" action="/settings/lang">`, "\n")
		h.raw(`<label for="lang">`)
		h.text(i18n.TrC(ctx, "language switcher", "Language"))
		h.raw("</label>\n")
		h.raw(`<select id="lang" name="lang">`, "\n")

		for _, tag := range i18n.Languages() {
			h.raw("<option")
			h.attr("value", tag.String())
			h.attr("lang", tag.String())

			if tag.String() == current.String() {
				h.raw(" selected")
			}

			h.raw(">")
			h.text(i18n.DisplayName(tag))
			h.raw("</option>\n")
		}

		h.raw("</select>\n")
		h.raw(`<button type="submit">`)
		h.component(ctx, i18n.MsgKey("Change language"))
		h.raw("</button>\n</form>\n")

		return h.err
	})
}
