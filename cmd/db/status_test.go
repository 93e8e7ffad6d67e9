package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestStatusConnectionFailureErrorsInBothOutputModes(t *testing.T) {
	// With no layer configured, Connect fails before any dial; status must
	// report that through the exit code regardless of the output flag.
	t.Setenv(cfgpkg.EnvDatabaseURL, "")
	os.Unsetenv(cfgpkg.EnvDatabaseURL)
	t.Setenv("TAGKEEP_HOME_DIR", t.TempDir())
	chdir(t, t.TempDir())

	flagStatusJSON = false
	assert.Error(t, statusCmd.RunE(statusCmd, nil))

	flagStatusJSON = true
	defer func() { flagStatusJSON = false }()
	assert.Error(t, statusCmd.RunE(statusCmd, nil))
}
