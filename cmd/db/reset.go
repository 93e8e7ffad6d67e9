package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
	pg "github.com/tagkeep/tagkeep/internal/store/postgres"
)

var flagResetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop the tags table and everything attached to it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagResetForce {
			return errors.New("refusing to drop the tags table without --force")
		}

		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		fmt.Fprintln(os.Stderr, "db:reset - connecting to Postgres...")
		db, err := pg.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Fprintln(os.Stderr, "db:reset - dropping tags table...")
		if err := pg.DropSchema(ctx, db); err != nil {
			return err
		}

		fmt.Println("tags schema dropped")
		return nil
	},
}

func init() {
	DBCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&flagResetForce, "force", false, "Confirm the destructive drop")
}
