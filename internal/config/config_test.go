package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("HOST", "")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("BADGER_PATH", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, DefaultReference, cfg.Reference)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("STORE_BACKEND", "badger")
	t.Setenv("BADGER_PATH", "/tmp/eventrix-test")
	t.Setenv("REFERENCE_LAT", "13.0827")
	t.Setenv("REFERENCE_LNG", "80.2707")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "badger", cfg.Store.Backend)
	assert.Equal(t, "/tmp/eventrix-test", cfg.Store.BadgerPath)
	assert.InDelta(t, 13.0827, cfg.Reference.Lat, 1e-9)
	assert.InDelta(t, 80.2707, cfg.Reference.Lng, 1e-9)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "cassandra")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigMongoRequiresURI(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("MONGODB_URI", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
