// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"sync"
	"testing"
	"time"

	"codeberg.org/myosh4423/portfolio/config"
)

// testConfigMutex serializes tests that mutate global package state.
var testConfigMutex sync.Mutex

// mockClock is a controllable current time for testing.
type mockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

func (m *mockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.currentTime
}

// Sleep advances the mock current time by d.
func (m *mockClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.currentTime = m.currentTime.Add(d)
}

// setupLimiterTest configures the limiter for a test, hooks a mock clock into
// timeNow and clears all limiters. Everything is restored when the test ends.
//
// NOTE: call it once per test. It holds a global lock until cleanup.
func setupLimiterTest(t *testing.T) *mockClock {
	t.Helper()

	testConfigMutex.Lock()

	origConfig := config.Global
	origTimeNow := timeNow

	config.Global.Limiter.Enabled = true
	config.Global.Limiter.IPv4Prefix = 24
	config.Global.Limiter.IPv6Prefix = 64
	config.Global.Limiter.PassIPs = []string{"127.0.0.1"}
	config.Global.Limiter.BlockIPs = []string{"10.0.0.1"}
	config.Global.Limiter.FilterLocal = false
	config.Global.Limiter.Rate = 1
	config.Global.Limiter.Burst = 3

	clock := &mockClock{currentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	timeNow = clock.Now

	limiters.Clear()

	t.Cleanup(func() {
		limiters.Clear()

		timeNow = origTimeNow
		config.Global = origConfig

		testConfigMutex.Unlock()
	})

	return clock
}
