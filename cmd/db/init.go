package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
	pg "github.com/tagkeep/tagkeep/internal/store/postgres"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the tags table and its indexes (idempotent)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		fmt.Fprintln(os.Stderr, "db:init - connecting to Postgres...")
		db, err := pg.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Fprintln(os.Stderr, "db:init - applying tags schema...")
		if err := pg.EnsureSchema(ctx, db); err != nil {
			return err
		}

		fmt.Println("tags schema is in place (table + 3 indexes, unique on user_id/tag)")
		return nil
	},
}
