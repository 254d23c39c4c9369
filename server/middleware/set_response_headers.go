// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"codeberg.org/myosh4423/portfolio/config"
)

var (
	// baseHeaders defines the default headers to be set in responses.
	//
	// Portfolio-Version and Portfolio-Revision are added dynamically in SetResponseHeaders.
	//
	// NOTE: we intentionally don't set CORP or HSTS headers.
	baseHeaders = http.Header{
		"Referrer-Policy":        {"no-referrer"},
		"X-Frame-Options":        {"DENY"},
		"X-Content-Type-Options": {"nosniff"},
		"Permissions-Policy":     {strings.Join(defaultPermissionsPolicy, ", ")},
	}

	// baseCSP defines static CSP directives that don't change.
	baseCSP = []string{
		"base-uri 'self'",
		"default-src 'self'",
		"script-src 'none'",
		"style-src 'self'",
		"font-src 'self'",
		"connect-src 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}

	defaultPermissionsPolicy = []string{
		"accelerometer=()",
		"camera=()",
		"display-capture=()",
		"geolocation=()",
		"gyroscope=()",
		"magnetometer=()",
		"microphone=()",
		"payment=()",
		"usb=()",
	}

	// negotiatedPaths are rendered from Accept-Language and the language
	// cookie, so shared caches must not store them.
	negotiatedPaths = []string{"/", "/api/v1/content"}
)

// SetResponseHeaders adds default headers to HTTP responses.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	if config.Global.Development.InDevelopment {
		invalidateCacheInDevelopment(headers)
	}

	setCacheControl(headers, r.URL.Path)

	headers.Set("Portfolio-Version", config.BuildVersion)
	headers.Set("Portfolio-Revision", config.Global.Build.Revision())
	headers.Set("Content-Security-Policy", buildCSP(config.Global.Assets.ThumbnailBase))

	next.ServeHTTP(w, r)
}

var clearSiteData sync.Once

// invalidateCacheInDevelopment clears the browser cache on the first
// response after a restart.
func invalidateCacheInDevelopment(headers http.Header) {
	clearSiteData.Do(func() {
		headers.Set("Clear-Site-Data", `"cache"`)
	})
}

// setCacheControl sets appropriate cache control headers.
func setCacheControl(headers http.Header, path string) {
	var cacheControl string

	switch {
	case strings.HasPrefix(path, "/icons/"), strings.HasPrefix(path, "/img/"):
		cacheControl = "public, max-age=1209600"
	case strings.HasPrefix(path, "/css/"):
		cacheControl = "public, max-age=604800"
	case strings.HasSuffix(path, ".txt"):
		cacheControl = "public, max-age=86400"
	case isNegotiated(path), strings.HasPrefix(path, "/settings/"), path == "/healthz":
		cacheControl = "private, no-cache"
	default:
		cacheControl = fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
			int(config.Global.HTTPCache.MaxAge.Seconds()),
			int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds()))
	}

	headers.Set("Cache-Control", cacheControl)
}

func isNegotiated(path string) bool {
	for _, p := range negotiatedPaths {
		if path == p {
			return true
		}
	}

	return false
}

// buildCSP allows thumbnails from thumbnailBase when it is an absolute URL.
func buildCSP(thumbnailBase string) string {
	imgSrc := "img-src 'self' data:"
	if origin := originOf(thumbnailBase); origin != "" {
		imgSrc += " " + origin
	}

	return strings.Join(append(baseCSP[:len(baseCSP):len(baseCSP)], imgSrc), "; ") + ";"
}

func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}

	return u.Scheme + "://" + u.Host
}
