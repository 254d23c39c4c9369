// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
)

// writePOT renders refs as a gettext template, ordered by context, msgid
// and plural so that regenerating an unchanged tree yields the same file.
func writePOT(w io.Writer, refs map[key][]ref, version string) error {
	var b strings.Builder

	b.WriteString("# Template for the portfolio site chrome. Regenerate with cmd/i18n_extract.\n")
	b.WriteString("msgid \"\"\nmsgstr \"\"\n")
	fmt.Fprintf(&b, "\"Project-Id-Version: portfolio %s\\n\"\n", version)
	b.WriteString("\"MIME-Version: 1.0\\n\"\n")
	b.WriteString("\"Content-Type: text/plain; charset=UTF-8\\n\"\n")
	b.WriteString("\"Content-Transfer-Encoding: 8bit\\n\"\n")
	b.WriteString("\"Plural-Forms: nplurals=2; plural=(n != 1);\\n\"\n")

	keys := make([]key, 0, len(refs))
	for k := range refs {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b key) int {
		return cmp.Or(cmp.Compare(a.ctx, b.ctx), cmp.Compare(a.id, b.id), cmp.Compare(a.plural, b.plural))
	})

	for _, k := range keys {
		b.WriteString("\n#:")

		rs := slices.Clone(refs[k])
		slices.SortFunc(rs, func(a, b ref) int {
			return cmp.Or(cmp.Compare(a.file, b.file), cmp.Compare(a.line, b.line))
		})

		for _, r := range slices.Compact(rs) {
			fmt.Fprintf(&b, " %s:%d", r.file, r.line)
		}

		b.WriteString("\n")

		if k.ctx != "" {
			fmt.Fprintf(&b, "msgctxt %q\n", k.ctx)
		}

		fmt.Fprintf(&b, "msgid %q\n", k.id)

		if k.plural != "" {
			fmt.Fprintf(&b, "msgid_plural %q\n", k.plural)
			b.WriteString("msgstr[0] \"\"\nmsgstr[1] \"\"\n")
		} else {
			b.WriteString("msgstr \"\"\n")
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}
