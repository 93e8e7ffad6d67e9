package vaultcmd

import (
	"fmt"

	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
)

var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Print the configured vault backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		fmt.Println(cfg.Vault.Backend)
		return nil
	},
}

func init() {
	VaultCmd.AddCommand(backendCmd)
}
