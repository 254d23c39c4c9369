// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"codeberg.org/myosh4423/portfolio/config"
	"codeberg.org/myosh4423/portfolio/server/middleware"
	"codeberg.org/myosh4423/portfolio/server/request_context"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	req = req.WithContext(request_context.WithRequestContext(req.Context(), req))

	rr := httptest.NewRecorder()
	middleware.Wrap(Evaluate, okHandler()).ServeHTTP(rr, req)

	return rr
}

func TestEvaluateLists(t *testing.T) {
	setupLimiterTest(t)

	config.Global.Limiter.Burst = 1

	// Pass-listed clients are never limited.
	for range 5 {
		assert.Equal(t, http.StatusOK, doRequest("/en", "127.0.0.1:1234").Code)
	}

	blocked := doRequest("/en", "10.0.0.1:1234")
	assert.Equal(t, http.StatusForbidden, blocked.Code)
	assert.Contains(t, blocked.Body.String(), `class="error"`)

	// Link-local clients are not filtered unless FilterLocal is set.
	for range 3 {
		assert.Equal(t, http.StatusOK, doRequest("/en", "[fe80::1]:1234").Code)
	}
}

func TestEvaluateExcludedPaths(t *testing.T) {
	setupLimiterTest(t)

	for _, path := range []string{"/css/site.css", "/icons/x.svg", "/img/projects/a.png", "/robots.txt", "/healthz"} {
		assert.Equal(t, http.StatusOK, doRequest(path, "10.0.0.1:1234").Code, path)
	}
}

func TestEvaluateRateLimit(t *testing.T) {
	clock := setupLimiterTest(t)

	for i := range 3 {
		rr := doRequest("/en", "203.0.113.7:1234")
		require.Equal(t, http.StatusOK, rr.Code, "request %d", i)
		assert.Equal(t, "3", rr.Header().Get(HeaderRateLimitLimit))
	}

	// Same /24 network shares the bucket.
	limited := doRequest("/en", "203.0.113.99:1234")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "1", limited.Header().Get("Retry-After"))
	assert.Equal(t, "0", limited.Header().Get(HeaderRateLimitRemaining))

	// Another network has its own bucket.
	assert.Equal(t, http.StatusOK, doRequest("/en", "198.51.100.1:1234").Code)

	clock.Sleep(time.Second)
	assert.Equal(t, http.StatusOK, doRequest("/en", "203.0.113.7:1234").Code)
}

func TestCheckRateLimitRetryAfter(t *testing.T) {
	setupLimiterTest(t)

	config.Global.Limiter.Rate = 0.5
	config.Global.Limiter.Burst = 1

	lw := getOrCreateLimiter("192.0.2.0/24")

	ok, _ := checkRateLimit(lw)
	require.True(t, ok)

	ok, retryAfter := checkRateLimit(lw)
	assert.False(t, ok)
	assert.Equal(t, 2*time.Second, retryAfter)
	assert.Equal(t, 2, ceilSeconds(retryAfter))
}

func TestCleanupExpiredLimiters(t *testing.T) {
	clock := setupLimiterTest(t)

	getOrCreateLimiter("192.0.2.0/24")
	clock.Sleep(LimiterExpiryDuration / 2)
	getOrCreateLimiter("198.51.100.0/24")
	clock.Sleep(LimiterExpiryDuration/2 + time.Second)

	assert.Equal(t, 1, cleanupExpiredLimiters())

	_, ok := limiters.Load("192.0.2.0/24")
	assert.False(t, ok)

	_, ok = limiters.Load("198.51.100.0/24")
	assert.True(t, ok)
}

func TestSaveAndInitFile(t *testing.T) {
	setupLimiterTest(t)

	lw := getOrCreateLimiter("192.0.2.0/24")
	checkRateLimit(lw)
	checkRateLimit(lw)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf))

	state := gjson.Parse(buf.String())
	require.Len(t, state.Array(), 1)
	assert.Equal(t, "192.0.2.0/24", state.Get("0.network").String())
	assert.Equal(t, 3, int(state.Get("0.burst").Int()))
	assert.InDelta(t, 1.0, state.Get("0.tokens").Float(), 0.001)

	limiters.Clear()
	require.NoError(t, InitFile(&buf))

	restored := getOrCreateLimiter("192.0.2.0/24")
	ok, _ := checkRateLimit(restored)
	assert.True(t, ok, "one token was left")

	ok, _ = checkRateLimit(restored)
	assert.False(t, ok)
}

func TestInitFileEmptyAndMalformed(t *testing.T) {
	setupLimiterTest(t)

	require.NoError(t, InitFile(strings.NewReader("")))
	assert.Error(t, InitFile(strings.NewReader("{not json")))
}

func TestInitAndFini(t *testing.T) {
	setupLimiterTest(t)

	config.Global.Limiter.StateFilepath = filepath.Join(t.TempDir(), "limiter.json")

	// A missing file is not an error.
	Init()

	getOrCreateLimiter("192.0.2.0/24")
	Fini()

	data, err := os.ReadFile(config.Global.Limiter.StateFilepath)
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.0/24", gjson.GetBytes(data, "0.network").String())

	limiters.Clear()
	Init()

	_, ok := limiters.Load("192.0.2.0/24")
	assert.True(t, ok)
}
