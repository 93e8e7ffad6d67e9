package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	configcmd "github.com/tagkeep/tagkeep/cmd/config"
	dbcmd "github.com/tagkeep/tagkeep/cmd/db"
	vaultcmd "github.com/tagkeep/tagkeep/cmd/vault"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:          "tagkeep",
	Short:        "Provision and inspect the tags database schema",
	Long:         "tagkeep provisions the PostgreSQL schema backing the user tag store:\na tags table with a (user_id, tag) uniqueness guarantee and lookup indexes.\nThe DDL is idempotent; running init twice is safe.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(level).With().Timestamp().Logger()
		// Layered env files: .env.local overrides .env; a real env var beats both.
		cfgpkg.LoadEnvFiles()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(dbcmd.DBCmd)
	rootCmd.AddCommand(configcmd.ConfigCmd)
	rootCmd.AddCommand(vaultcmd.VaultCmd)
}
