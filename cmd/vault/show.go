package vaultcmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
	vpkg "github.com/tagkeep/tagkeep/internal/vault"
)

// showCmd prints metadata only; the secret value never leaves the backend.
var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show secret metadata (never the value)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		var items []vpkg.SecretMetadata
		if len(args) == 1 {
			md, err := st.GetSecretMetadata(ctx, args[0])
			if err != nil {
				return err
			}
			items = append(items, md)
		} else {
			items, err = st.ListSecrets(ctx)
			if err != nil {
				return err
			}
		}
		for _, md := range items {
			updated := "unknown"
			if md.UpdatedAt != nil {
				updated = md.UpdatedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(os.Stdout, "%s\tset=%t\tbackend=%s\tupdated=%s\n", md.Name, md.IsSet, md.Backend, updated)
		}
		return nil
	},
}

func init() {
	VaultCmd.AddCommand(showCmd)
}
