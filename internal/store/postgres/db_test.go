package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagkeep/tagkeep/internal/config"
)

// clearLayers empties every configuration layer so resolution genuinely has
// nothing to find: no env var, no config.yaml (fresh home), and a vault with no
// secret stored (or no backend at all off-darwin).
func clearLayers(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvDatabaseURL, "")
	os.Unsetenv(config.EnvDatabaseURL)
	t.Setenv("TAGKEEP_HOME_DIR", t.TempDir())
}

func TestResolveURLNothingConfigured(t *testing.T) {
	clearLayers(t)
	_, err := ResolveURL(context.Background(), config.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDatabaseURL)
}

func TestResolveURLPrefersEnvironment(t *testing.T) {
	t.Setenv("TAGKEEP_HOME_DIR", t.TempDir())
	t.Setenv(config.EnvDatabaseURL, "postgres://env/db")
	cfg := config.Config{}
	cfg.Database.URL = "postgres://yaml/db"
	url, err := ResolveURL(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", url)
}

func TestResolveURLFallsBackToConfig(t *testing.T) {
	clearLayers(t)
	cfg := config.Config{}
	cfg.Database.URL = "postgres://yaml/db"
	url, err := ResolveURL(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "postgres://yaml/db", url)
}

func TestConnectURLMalformedURI(t *testing.T) {
	// Parsing fails before any dial, so no database is needed.
	_, err := ConnectURL(context.Background(), "not a uri", config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db.connect")
}

func TestConnectURLUnreachableHost(t *testing.T) {
	cfg := config.Config{}
	cfg.Database.ConnectTimeoutSeconds = 2

	start := time.Now()
	_, err := ConnectURL(context.Background(),
		"postgres://postgres@127.0.0.1:1/nope?sslmode=disable&connect_timeout=1", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db.ping")
	// Must fail within the bounded ping window rather than hang.
	assert.Less(t, time.Since(start), 30*time.Second)
}

func TestConnectEmptyResolutionNeverDials(t *testing.T) {
	clearLayers(t)
	_, err := Connect(context.Background(), config.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDatabaseURL)
}
