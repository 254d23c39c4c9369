// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"codeberg.org/myosh4423/portfolio/config"
)

const (
	LimiterExpiryDuration = time.Hour       // How long to keep idle limiters in memory.
	CleanupInterval       = 5 * time.Minute // Interval between limiter cleanup runs.
)

var (
	limiters sync.Map   // network string -> *limiterWrapper
	timeNow  = time.Now // Wrapper for time.Now, which allows us to mock it in tests.
)

// limiterWrapper holds the token bucket of one IP network.
type limiterWrapper struct {
	limiter    *rate.Limiter
	network    string
	lastAccess time.Time
	mu         sync.Mutex
}

// serializableLimiter is the JSON form of a limiterWrapper.
type serializableLimiter struct {
	Network    string    `json:"network"`
	LastAccess time.Time `json:"last_access"`
	Rate       float64   `json:"rate"`
	Burst      int       `json:"burst"`
	Tokens     float64   `json:"tokens"`
}

// Save serializes the current state of all limiters to w as a JSON array.
func Save(w io.Writer) error {
	now := timeNow()

	stateToSave := []serializableLimiter{}

	limiters.Range(func(_, value any) bool {
		limWrapper := value.(*limiterWrapper)

		limWrapper.mu.Lock()
		stateToSave = append(stateToSave, serializableLimiter{
			Network:    limWrapper.network,
			LastAccess: limWrapper.lastAccess,
			Rate:       float64(limWrapper.limiter.Limit()),
			Burst:      limWrapper.limiter.Burst(),
			Tokens:     limWrapper.limiter.TokensAt(now),
		})
		limWrapper.mu.Unlock()

		return true
	})

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(stateToSave); err != nil {
		return err
	}

	log.Info().Str("sys", "limiter").Int("count", len(stateToSave)).Msg("Saved limiter state")

	return nil
}

// InitFile replaces the in-memory limiters with the state read from r.
//
// Buckets are restored with the configured rate and burst; saved tokens are
// kept so that a restart does not refill every bucket.
func InitFile(r io.Reader) error {
	var loadedState []serializableLimiter

	if err := json.NewDecoder(r).Decode(&loadedState); err != nil {
		// An empty file just means we start fresh.
		if errors.Is(err, io.EOF) {
			return nil
		}

		return err
	}

	limiters.Clear()

	now := timeNow()
	for _, sl := range loadedState {
		limWrapper := newLimiterWrapper(sl.Network, sl.LastAccess)

		// Consume what the saved bucket had already spent.
		if spent := limWrapper.limiter.Burst() - int(math.Ceil(sl.Tokens)); spent > 0 {
			limWrapper.limiter.AllowN(now, spent)
		}

		limiters.Store(sl.Network, limWrapper)
	}

	log.Info().Str("sys", "limiter").Int("count", len(loadedState)).Msg("Loaded limiter state")

	return nil
}

// Init loads the limiter state file, if one is configured.
func Init() {
	limiterStateFile := config.Global.Limiter.StateFilepath
	if limiterStateFile == "" {
		return
	}

	file, err := os.Open(limiterStateFile) // #nosec:G304
	if err != nil {
		if os.IsNotExist(err) {
			log.Info().Str("sys", "limiter").Str("file", limiterStateFile).
				Msg("Limiter state file not found, starting with a fresh state")
		} else {
			log.Warn().Str("sys", "limiter").Err(err).Str("file", limiterStateFile).
				Msg("Could not open limiter state file, starting with a fresh state")
		}

		return
	}
	defer file.Close()

	if err := InitFile(file); err != nil {
		log.Warn().Str("sys", "limiter").Err(err).Str("file", limiterStateFile).
			Msg("Could not parse limiter state file, starting with a fresh state")
	}
}

// Fini saves the limiter state file, if one is configured.
func Fini() {
	limiterStateFile := config.Global.Limiter.StateFilepath
	if limiterStateFile == "" {
		return
	}

	file, err := os.Create(limiterStateFile) // #nosec:G304
	if err != nil {
		log.Warn().Str("sys", "limiter").Err(err).Str("file", limiterStateFile).
			Msg("Failed to create limiter state file")

		return
	}
	defer file.Close()

	if err := Save(file); err != nil {
		log.Warn().Str("sys", "limiter").Err(err).Str("file", limiterStateFile).
			Msg("Failed to write limiter state")
	}
}

func newLimiterWrapper(network string, lastAccess time.Time) *limiterWrapper {
	return &limiterWrapper{
		limiter:    rate.NewLimiter(rate.Limit(config.Global.Limiter.Rate), config.Global.Limiter.Burst),
		network:    network,
		lastAccess: lastAccess,
	}
}

// getOrCreateLimiter returns the limiterWrapper for network, creating it
// with the configured rate and burst if needed.
func getOrCreateLimiter(network string) *limiterWrapper {
	if value, ok := limiters.Load(network); ok {
		return value.(*limiterWrapper)
	}

	value, _ := limiters.LoadOrStore(network, newLimiterWrapper(network, timeNow()))

	return value.(*limiterWrapper)
}

// checkRateLimit attempts to consume 1 token from limWrapper.
//
// When the bucket is empty it returns false and how long until a token is available.
func checkRateLimit(limWrapper *limiterWrapper) (bool, time.Duration) {
	limWrapper.mu.Lock()
	defer limWrapper.mu.Unlock()

	now := timeNow()
	limWrapper.lastAccess = now

	if limWrapper.limiter.AllowN(now, 1) {
		return true, 0
	}

	limit := float64(limWrapper.limiter.Limit())
	if limit <= 0 {
		return false, LimiterExpiryDuration
	}

	deficit := 1 - limWrapper.limiter.TokensAt(now)

	return false, time.Duration(deficit / limit * float64(time.Second))
}

// cleanupExpiredLimiters removes limiters that haven't been accessed for LimiterExpiryDuration.
func cleanupExpiredLimiters() int {
	now := timeNow()

	var keysToDelete []any

	limiters.Range(func(key, value any) bool {
		limWrapper := value.(*limiterWrapper)

		limWrapper.mu.Lock()
		lastAccess := limWrapper.lastAccess
		limWrapper.mu.Unlock()

		if now.Sub(lastAccess) > LimiterExpiryDuration {
			keysToDelete = append(keysToDelete, key)
		}

		return true
	})

	for _, key := range keysToDelete {
		limiters.Delete(key)
	}

	return len(keysToDelete)
}
