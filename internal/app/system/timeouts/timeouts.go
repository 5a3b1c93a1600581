// Package timeouts provides centralized timeout values for handler and
// catalog operations.
//
// Values start at the defaults below and can be changed at startup with
// Configure or ConfigureFromEnv. Guidelines:
//   - Ping: health checks against MongoDB
//   - Request: waiting on a catalog reload from an HTTP handler
//   - Catalog: one fetch+parse cycle of the catalog
//   - Startup: waiting for the first catalog load before serving
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing    = 2 * time.Second
	DefaultRequest = 10 * time.Second
	DefaultCatalog = 15 * time.Second
	DefaultStartup = 60 * time.Second
)

var mu sync.RWMutex

var (
	ping    = DefaultPing
	request = DefaultRequest
	catalog = DefaultCatalog
	startup = DefaultStartup
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Request returns how long a handler waits on work it triggers, such as a
// manual catalog reload.
func Request() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return request
}

// Catalog returns the timeout for a single catalog load.
func Catalog() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return catalog
}

// Startup returns how long startup waits for the first catalog load.
func Startup() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return startup
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping    time.Duration
	Request time.Duration
	Catalog time.Duration
	Startup time.Duration
}

// Configure sets custom timeout values. Zero values keep the current value.
// Call it during startup before handlers are registered.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Request > 0 {
		request = cfg.Request
	}
	if cfg.Catalog > 0 {
		catalog = cfg.Catalog
	}
	if cfg.Startup > 0 {
		startup = cfg.Startup
	}
}

// Reset restores all timeouts to their default values.
// Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	request = DefaultRequest
	catalog = DefaultCatalog
	startup = DefaultStartup
}

// ConfigureFromEnv reads timeout overrides from the environment:
// TIMEOUT_PING, TIMEOUT_REQUEST, TIMEOUT_CATALOG and TIMEOUT_STARTUP, each a
// Go duration ("2s", "500ms"). Invalid or non-positive values are ignored.
//
// Returns the number of timeouts configured from the environment.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()

	configured := 0
	for _, v := range []struct {
		key string
		dst *time.Duration
	}{
		{"TIMEOUT_PING", &ping},
		{"TIMEOUT_REQUEST", &request},
		{"TIMEOUT_CATALOG", &catalog},
		{"TIMEOUT_STARTUP", &startup},
	} {
		s := os.Getenv(v.key)
		if s == "" {
			continue
		}
		if d, err := time.ParseDuration(s); err == nil && d > 0 {
			*v.dst = d
			configured++
		}
	}
	return configured
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Ping:    ping,
		Request: request,
		Catalog: catalog,
		Startup: startup,
	}
}
