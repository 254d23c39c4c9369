// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package idgen makes short, mostly unique identifiers for requests and cache busting.
*/
package idgen

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// Make makes a short ID with a 6 byte timestamp and 3 bytes of entropy.
func Make() string {
	var entropy [3]byte

	_, _ = rand.Read(entropy[:])

	return maketime(time.Now()) + base64.RawURLEncoding.EncodeToString(entropy[:])
}

func maketime(t time.Time) string {
	return t.Format("150405")
}
