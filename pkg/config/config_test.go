package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "postgres", cfg.Get(KeyStorageMode))
	assert.Equal(t, "localhost", cfg.Get(KeyDatabaseHost))
	assert.Equal(t, 5432, cfg.GetInt(KeyDatabasePort, 0))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("LUMINET_DATABASE_HOST", "db.internal")
	t.Setenv("LUMINET_STORAGE_MODE", "memory")

	cfg := New()
	assert.Equal(t, "db.internal", cfg.Get(KeyDatabaseHost))
	assert.Equal(t, "memory", cfg.Get(KeyStorageMode))
	assert.Equal(t, "luminet", cfg.Get(KeyDatabaseName))
}

func TestEnvVarName(t *testing.T) {
	assert.Equal(t, "LUMINET_DATABASE_SSLMODE", EnvVar(KeyDatabaseSSLMode))
}

func TestGetInt(t *testing.T) {
	cfg := New()
	cfg.Update(map[string]string{KeyDatabasePort: "not a number"})
	assert.Equal(t, 5432, cfg.GetInt(KeyDatabasePort, 5432))
}

func TestRequiresRestart(t *testing.T) {
	cfg := New()
	before := cfg.GetAll()

	cfg.Update(map[string]string{KeyStorageMode: "memory"})
	assert.True(t, cfg.RequiresRestart(before))

	cfg.Update(map[string]string{KeyStorageMode: before[KeyStorageMode]})
	assert.False(t, cfg.RequiresRestart(before))
}
