package configcmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
	"github.com/tagkeep/tagkeep/internal/store/dbutil"
	"gopkg.in/yaml.v3"
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective configuration (connection URI redacted)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		// Never echo the URI itself; report presence and length only.
		if cfg.Database.URL != "" {
			cfg.Database.URL = dbutil.ParamSummary("redacted", cfg.Database.URL)
		}
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "config file: %s\n", cfgpkg.Path())
		_, err = os.Stdout.Write(b)
		return err
	},
}
