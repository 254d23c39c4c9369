// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ParseURL parses an absolute URL string, trimming any trailing slash from
// its path. urlType names the value in error messages.
func ParseURL(urlStr, urlType string) (*url.URL, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s URL: %w", urlType, err)
	}

	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf(
			"%s URL is invalid: %s. Please specify a complete URL with scheme and host, e.g. https://example.com",
			urlType,
			urlStr)
	}

	parsedURL.Path = strings.TrimSuffix(parsedURL.Path, "/")

	return parsedURL, nil
}

// GetFormValue retrieves the value of a form parameter by name.
//
// If the parameter is not present, it returns the provided default value or an empty string.
func GetFormValue(r *http.Request, name string, defaultValue ...string) string {
	if err := r.ParseForm(); err == nil {
		if v := r.FormValue(name); v != "" {
			return v
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}

// GetOriginFromRequest returns the origin ("scheme://host") of r.
//
// The scheme follows [IsConnectionSecure].
func GetOriginFromRequest(r *http.Request) string {
	scheme := "http"
	if IsConnectionSecure(r) {
		scheme = "https"
	}

	return scheme + "://" + r.Host
}

// GetPathVar retrieves the value of a path variable by name.
//
// If the variable is not present, it returns the provided default value or an empty string.
func GetPathVar(r *http.Request, name string, defaultValue ...string) string {
	if v := r.PathValue(name); v != "" {
		return v
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}

	return ""
}
