package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/tagkeep/tagkeep/internal/paths"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConnectTimeoutSeconds = 5
	DefaultVaultBackend          = "keychain"

	// EnvDatabaseURL is the environment variable holding the connection URI.
	EnvDatabaseURL = "DATABASE_URL"

	envFileLocal = ".env.local"
	envFileBase  = ".env"
)

type DatabaseConfig struct {
	URL                   string `yaml:"url"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds"`
}

type VaultConfig struct {
	Backend string `yaml:"backend"`
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Vault    VaultConfig    `yaml:"vault"`
}

func defaults() Config {
	return Config{
		Database: DatabaseConfig{ConnectTimeoutSeconds: DefaultConnectTimeoutSeconds},
		Vault:    VaultConfig{Backend: DefaultVaultBackend},
	}
}

// Path returns the expected path to the config.yaml file.
func Path() string {
	return filepath.Join(paths.Home(), "config.yaml")
}

// Load reads configuration from config.yaml if it exists.
// Missing file is not an error; defaults are returned.
func Load() (Config, error) {
	cfg := defaults()
	p := Path()
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	// Merge: override defaults with provided values if non-zero
	if fileCfg.Database.URL != "" {
		cfg.Database.URL = fileCfg.Database.URL
	}
	if fileCfg.Database.ConnectTimeoutSeconds != 0 {
		cfg.Database.ConnectTimeoutSeconds = fileCfg.Database.ConnectTimeoutSeconds
	}
	if fileCfg.Vault.Backend != "" {
		cfg.Vault.Backend = fileCfg.Vault.Backend
	}
	return cfg, nil
}

// LoadEnvFiles pulls .env.local and then .env from the working directory into the
// process environment. godotenv never overrides variables that are already set, so
// a real environment variable beats .env.local, which beats .env. Missing files
// are fine.
func LoadEnvFiles() {
	for _, f := range []string{envFileLocal, envFileBase} {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			log.Debug().Str("file", f).Err(err).Msg("skipping env file")
		}
	}
}

// DatabaseURL resolves the connection URI from the environment (after LoadEnvFiles),
// falling back to config.yaml. Returns "" when nothing is configured; the vault
// fallback lives with the store since it needs a context.
func DatabaseURL(cfg Config) string {
	if v := os.Getenv(EnvDatabaseURL); v != "" {
		return v
	}
	return cfg.Database.URL
}

// ConnectTimeout returns the bounded dial/ping timeout.
func (c Config) ConnectTimeout() time.Duration {
	s := c.Database.ConnectTimeoutSeconds
	if s <= 0 {
		s = DefaultConnectTimeoutSeconds
	}
	return time.Duration(s) * time.Second
}

// Validate reports configuration values that cannot work.
func (c Config) Validate() error {
	if c.Database.ConnectTimeoutSeconds < 0 {
		return fmt.Errorf("database.connect_timeout_seconds must not be negative: %d", c.Database.ConnectTimeoutSeconds)
	}
	switch c.Vault.Backend {
	case "", "keychain":
	default:
		return fmt.Errorf("unknown vault backend: %s", c.Vault.Backend)
	}
	return nil
}
