// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Translatable is a value that can translate itself using a context.
// Types such as [MsgKey] implement Translatable.
type Translatable interface {
	Tr(ctx context.Context) string
}

// MsgKey is a source message id (msgid) string.
//
// MsgKey should be the original English UI text, not an invented key.
type MsgKey string

// Tr translates this msgid within the locale carried by ctx.
// The ctx may be nil, in which case the default locale is used.
func (s MsgKey) Tr(ctx context.Context) string {
	return Tr(ctx, string(s))
}

// Render writes the escaped translation, making MsgKey a templ.Component.
func (s MsgKey) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, templ.EscapeString(s.Tr(ctx)))

	return err
}
