package paths

import (
	"os"
	"path/filepath"
)

const envHome = "TAGKEEP_HOME_DIR"

// Home returns the base directory for tagkeep configuration/state.
// Defaults to ~/.tagkeep, can be overridden via TAGKEEP_HOME_DIR.
func Home() string {
	if v := os.Getenv(envHome); v != "" {
		return v
	}
	hd, err := os.UserHomeDir()
	if err != nil || hd == "" {
		return ".tagkeep"
	}
	return filepath.Join(hd, ".tagkeep")
}

func EnsureHome() (string, error) {
	h := Home()
	if err := os.MkdirAll(h, 0o755); err != nil {
		return "", err
	}
	return h, nil
}
