// Package config holds the runtime configuration of the lighting
// service. Values are seeded from defaults, overlaid with LUMINET_*
// environment variables and may be updated at runtime; keys listed as
// restart keys only take effect after a restart.
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// Keys understood by the lighting service.
const (
	KeyStorageMode      = "storage.mode" // "postgres" or "memory"
	KeyDatabaseHost     = "database.host"
	KeyDatabasePort     = "database.port"
	KeyDatabaseUser     = "database.user"
	KeyDatabasePassword = "database.password"
	KeyDatabaseName     = "database.name"
	KeyDatabaseSSLMode  = "database.sslmode"
)

// RestartKeys are the keys the engine cannot re-read while running; the
// store is built from them during initialization.
var RestartKeys = []string{
	KeyStorageMode,
	KeyDatabaseHost,
	KeyDatabasePort,
	KeyDatabaseUser,
	KeyDatabasePassword,
	KeyDatabaseName,
	KeyDatabaseSSLMode,
}

func defaults() map[string]string {
	return map[string]string{
		KeyStorageMode:      "postgres",
		KeyDatabaseHost:     "localhost",
		KeyDatabasePort:     "5432",
		KeyDatabaseUser:     "luminet",
		KeyDatabasePassword: "luminet",
		KeyDatabaseName:     "luminet",
		KeyDatabaseSSLMode:  "disable",
	}
}

// EnvVar returns the environment variable that overrides key, e.g.
// LUMINET_DATABASE_HOST for database.host.
func EnvVar(key string) string {
	return "LUMINET_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Config manages service configuration
type Config struct {
	mu     sync.RWMutex
	values map[string]string

	// Define which keys require restart when changed
	restartKeys []string
}

// New creates a configuration manager seeded with the service defaults
// and any LUMINET_* environment overrides.
func New() *Config {
	values := defaults()
	for key := range values {
		if v := os.Getenv(EnvVar(key)); v != "" {
			values[key] = v
		}
	}
	return &Config{
		values:      values,
		restartKeys: RestartKeys,
	}
}

// Get retrieves a configuration value
func (c *Config) Get(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key]
}

// GetInt retrieves a configuration value as an integer, falling back to
// def when the value is unset or malformed.
func (c *Config) GetInt(key string, def int) int {
	if n, err := strconv.Atoi(c.Get(key)); err == nil {
		return n
	}
	return def
}

// GetAll returns a copy of all configuration values
func (c *Config) GetAll() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	copy := make(map[string]string)
	for k, v := range c.values {
		copy[k] = v
	}
	return copy
}

// Update updates configuration values
func (c *Config) Update(values map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, v := range values {
		c.values[k] = v
	}
}

// RequiresRestart checks if any changed keys require a restart
func (c *Config) RequiresRestart(oldConfig map[string]string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, key := range c.restartKeys {
		if oldConfig[key] != c.values[key] {
			return true
		}
	}

	return false
}

// SetRestartKeys sets which configuration keys require restart when changed
func (c *Config) SetRestartKeys(keys []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restartKeys = keys
}
