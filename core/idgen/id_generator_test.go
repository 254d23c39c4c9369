// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package idgen

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaketime(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.Equal(t, strings.ReplaceAll(now.Format("15:04:05"), ":", ""), maketime(now))
}

func TestMake(t *testing.T) {
	t.Parallel()

	id := Make()

	// 6 timestamp digits + 4 base64 characters for 3 bytes
	assert.Len(t, id, 10)
	assert.NotEqual(t, id, Make())
}
