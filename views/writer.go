// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and remembers the first write error, so that
// components can emit a whole page and check once at the end.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}

		_, h.err = io.WriteString(h.w, s)
	}
}

// text writes s escaped for element content and attribute values.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// href writes an href attribute, replacing unsafe URL schemes.
func (h *htmlWriter) href(url string) {
	h.attr("href", string(templ.URL(url)))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}

	h.err = c.Render(ctx, h.w)
}
