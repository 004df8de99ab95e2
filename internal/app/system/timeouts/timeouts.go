// Package timeouts provides centralized timeout values for outbound calls
// made while serving a request.
//
// Guidelines for choosing a timeout:
//   - Short: single lookups against the membership platform (token exchange,
//     profile, access checks)
//   - Medium: listing every member, which may span several pages
//
// Timeouts can be configured at startup using Configure(). If not configured,
// the defaults are used.
package timeouts

import (
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultShort  = 5 * time.Second
	DefaultMedium = 20 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	short  = DefaultShort
	medium = DefaultMedium
)

// Short returns the timeout for single upstream lookups.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for a full member listing.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Short  time.Duration
	Medium time.Duration
}

// Configure sets custom timeout values. Zero values in the config are ignored,
// keeping the current (or default) values. This should be called during
// application startup before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	short = DefaultShort
	medium = DefaultMedium
}

// Current returns the current timeout configuration as a Config struct.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Short: short, Medium: medium}
}
