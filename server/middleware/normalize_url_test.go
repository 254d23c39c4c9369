// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		requestURL       string
		expectedStatus   int
		expectedLocation string
	}{
		{name: "root", requestURL: "/", expectedStatus: http.StatusOK},
		{name: "canonical locale", requestURL: "/en", expectedStatus: http.StatusOK},
		{name: "api path", requestURL: "/api/v1/content/en", expectedStatus: http.StatusOK},
		{name: "unsupported locale is left to the handler", requestURL: "/fr", expectedStatus: http.StatusOK},
		{name: "not a locale", requestURL: "/healthz", expectedStatus: http.StatusOK},
		{name: "file name", requestURL: "/favicon.ico", expectedStatus: http.StatusOK},
		{
			name:             "trailing slash",
			requestURL:       "/api/v1/locales/",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/api/v1/locales",
		},
		{
			name:             "trailing slash keeps the query",
			requestURL:       "/ja/?lang=auto",
			expectedStatus:   http.StatusPermanentRedirect,
			expectedLocation: "/ja?lang=auto",
		},
		{name: "upper case locale", requestURL: "/EN", expectedStatus: http.StatusMovedPermanently, expectedLocation: "/en"},
		{name: "region subtag", requestURL: "/ja-JP", expectedStatus: http.StatusMovedPermanently, expectedLocation: "/ja"},
		{
			name:             "region subtag keeps the query",
			requestURL:       "/en-US?x=1",
			expectedStatus:   http.StatusMovedPermanently,
			expectedLocation: "/en?x=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := Wrap(NormalizeURL, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.requestURL, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
		})
	}
}

func TestHasTrailingSlash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{"/", false},
		{"/en", false},
		{"/en/", true},
		{"/api/v1/content/", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, hasTrailingSlash(httptest.NewRequest(http.MethodGet, tt.path, nil)))
		})
	}
}
