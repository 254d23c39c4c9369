// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/myosh4423/portfolio/server/utils"
)

func TestParseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		urlStr   string
		wantErr  bool
		expected string
	}{
		{"Valid URL", "https://example.com", false, "https://example.com"},
		{"Valid URL with path", "https://example.com/path", false, "https://example.com/path"},
		{"Missing scheme", "example.com", true, ""},
		{"Missing host", "https://", true, ""},
		{"Trailing slash", "https://example.com/", false, "https://example.com"},
		{"Path with trailing slash", "https://example.com/path/", false, "https://example.com/path"},
		{"Empty URL", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := utils.ParseURL(tt.urlStr, "Site")
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestGetOriginFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		proto      string
		want       string
	}{
		{"plain", "203.0.113.9:1234", "", "http://portfolio.test"},
		{"private proxy", "10.0.0.2:1234", "https", "https://portfolio.test"},
		{"loopback proxy", "127.0.0.1:1234", "https", "https://portfolio.test"},
		{"public peer ignored", "203.0.113.9:1234", "https", "http://portfolio.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "http://portfolio.test/", nil)
			r.RemoteAddr = tt.remoteAddr

			if tt.proto != "" {
				r.Header.Set("X-Forwarded-Proto", tt.proto)
			}

			assert.Equal(t, tt.want, utils.GetOriginFromRequest(r))
		})
	}
}

func TestGetFormValue(t *testing.T) {
	t.Parallel()

	form := url.Values{"lang": {"en"}}
	r := httptest.NewRequest(http.MethodPost, "/settings/lang", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	assert.Equal(t, "en", utils.GetFormValue(r, "lang"))
	assert.Equal(t, "fallback", utils.GetFormValue(r, "missing", "fallback"))
	assert.Empty(t, utils.GetFormValue(r, "missing"))
}
