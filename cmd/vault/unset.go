package vaultcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
	vpkg "github.com/tagkeep/tagkeep/internal/vault"
)

var unsetCmd = &cobra.Command{
	Use:   "unset <name>",
	Short: "Delete a secret from the vault",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return errors.New("name must not be empty")
		}
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		st, err := vpkg.NewStore(cfg.Vault.Backend)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := st.UnsetSecret(ctx, name); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "secret %q removed from backend %q\n", name, cfg.Vault.Backend)
		return nil
	},
}

func init() {
	VaultCmd.AddCommand(unsetCmd)
}
