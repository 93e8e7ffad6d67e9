package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TAGKEEP_HOME_DIR", dir)
	assert.Equal(t, dir, Home())
}

func TestHomeDefaultsUnderUserHome(t *testing.T) {
	t.Setenv("TAGKEEP_HOME_DIR", "")
	os.Unsetenv("TAGKEEP_HOME_DIR")
	hd, err := os.UserHomeDir()
	if err != nil || hd == "" {
		t.Skip("no user home directory in this environment")
	}
	assert.Equal(t, filepath.Join(hd, ".tagkeep"), Home())
}

func TestEnsureHomeCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "home")
	t.Setenv("TAGKEEP_HOME_DIR", dir)
	got, err := EnsureHome()
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	st, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}
