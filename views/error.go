// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"codeberg.org/myosh4423/portfolio/content"
	"codeberg.org/myosh4423/portfolio/i18n"
	"codeberg.org/myosh4423/portfolio/server/template/commondata"
)

// ErrorData describes an error page. Title and Message are already translated.
type ErrorData struct {
	Locale     content.Locale
	StatusCode int
	Title      string
	Message    string
	RequestID  string
	Common     commondata.PageCommonData
}

// Error renders an error page in the chrome of the site.
func Error(data ErrorData) templ.Component {
	return layout(LayoutData{
		Locale:   data.Locale,
		HTMLLang: data.Locale.String(),
		Title:    data.Title,
		Common:   data.Common,
	}, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<section class="error">`, "\n")
		h.raw(`<p class="status">`, strconv.Itoa(data.StatusCode), "</p>\n")
		h.raw("<h1>")
		h.text(data.Title)
		h.raw("</h1>\n<p>")
		h.text(data.Message)
		h.raw("</p>\n")

		if data.RequestID != "" {
			h.raw(`<p class="request-id">`)
			h.text(i18n.Tr(ctx, "Request ID: {{.ID}}", "ID", data.RequestID))
			h.raw("</p>\n")
		}

		h.raw(`<a`)
		h.href("/" + data.Locale.String())
		h.raw(">")
		h.component(ctx, i18n.MsgKey("Back to home"))
		h.raw("</a>\n</section>\n")

		return h.err
	}))
}
