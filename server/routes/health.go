// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"io"
	"net/http"
)

// Healthz reports that the server is up.
func Healthz(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	_, err := io.WriteString(w, "ok")

	return err
}
