package vaultcmd

import (
	"github.com/spf13/cobra"
)

var VaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Keep the database connection URI in the OS keychain",
}
