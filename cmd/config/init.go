package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
	"github.com/tagkeep/tagkeep/internal/paths"
	"gopkg.in/yaml.v3"
)

var (
	flagOverwrite      bool
	flagDryRun         bool
	flagURL            string
	flagConnectTimeout int
	flagVaultBackend   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config.yaml with the provided values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cfgpkg.Config{
			Database: cfgpkg.DatabaseConfig{
				URL:                   flagURL,
				ConnectTimeoutSeconds: flagConnectTimeout,
			},
			Vault: cfgpkg.VaultConfig{Backend: flagVaultBackend},
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}

		p := cfgpkg.Path()
		if flagDryRun {
			fmt.Fprintf(os.Stderr, "dry-run: would write %s\n", p)
			_, err = os.Stdout.Write(b)
			return err
		}
		if _, err := os.Stat(p); err == nil && !flagOverwrite {
			return fmt.Errorf("%s already exists; use --overwrite to replace it", p)
		}
		if _, err := paths.EnsureHome(); err != nil {
			return err
		}
		if err := os.WriteFile(p, b, 0o600); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", p)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&flagOverwrite, "overwrite", false, "Replace an existing config.yaml")
	initCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the config instead of writing it")
	initCmd.Flags().StringVar(&flagURL, "url", "", "Database connection URI (prefer the vault or env files for secrets)")
	initCmd.Flags().IntVar(&flagConnectTimeout, "connect-timeout", cfgpkg.DefaultConnectTimeoutSeconds, "Connect/ping timeout in seconds")
	initCmd.Flags().StringVar(&flagVaultBackend, "vault-backend", cfgpkg.DefaultVaultBackend, "Vault backend for secrets")
}
