package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check config.yaml and report where the database URL would come from",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		switch {
		case os.Getenv(cfgpkg.EnvDatabaseURL) != "":
			fmt.Fprintln(os.Stderr, "database URL: from environment (or .env.local/.env)")
		case cfg.Database.URL != "":
			fmt.Fprintln(os.Stderr, "database URL: from config.yaml")
		default:
			fmt.Fprintln(os.Stderr, "database URL: not set in env or config.yaml; the vault will be tried at connect time")
		}
		fmt.Println("config is valid")
		return nil
	},
}
