package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
	pg "github.com/tagkeep/tagkeep/internal/store/postgres"
)

var flagStatusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database connectivity and schema object status",
	RunE: func(cmd *cobra.Command, args []string) error {
		type connStatus struct {
			OK    bool   `json:"ok"`
			DB    string `json:"db,omitempty"`
			User  string `json:"user,omitempty"`
			Error string `json:"error,omitempty"`
		}
		type statusOut struct {
			Connection connStatus      `json:"connection"`
			Table      bool            `json:"table"`
			Indexes    map[string]bool `json:"indexes"`
			Constraint bool            `json:"constraint"`
			OK         bool            `json:"ok"`
		}
		st := statusOut{Indexes: map[string]bool{}}

		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		fmt.Fprintln(os.Stderr, "db:status - checking Postgres...")
		db, err := pg.Connect(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "postgres: error: %v\n", err)
			st.Connection = connStatus{OK: false, Error: err.Error()}
			if flagStatusJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if encErr := enc.Encode(st); encErr != nil {
					return encErr
				}
			}
			// Both output modes report the failure through the exit code.
			return err
		}
		defer db.Close()

		var dbname, user string
		_ = db.QueryRow(ctx, "select current_database(), current_user").Scan(&dbname, &user)
		fmt.Fprintf(os.Stderr, "postgres: ok db=%s user=%s\n", dbname, user)
		st.Connection = connStatus{OK: true, DB: dbname, User: user}

		st.OK = true
		if ok, _ := pg.TableExists(ctx, db, pg.TableName); ok {
			fmt.Fprintln(os.Stderr, "postgres: table tags: ok")
			st.Table = true
		} else {
			fmt.Fprintln(os.Stderr, "postgres: table tags: missing (run 'tagkeep db init')")
			st.OK = false
		}
		for _, idx := range pg.IndexNames {
			ok, _ := pg.IndexExists(ctx, db, idx)
			st.Indexes[idx] = ok
			if ok {
				fmt.Fprintf(os.Stderr, "postgres: index %s: ok\n", idx)
			} else {
				fmt.Fprintf(os.Stderr, "postgres: index %s: missing (run 'tagkeep db init')\n", idx)
				st.OK = false
			}
		}
		if ok, _ := pg.ConstraintExists(ctx, db, pg.TableName, pg.UniqueConstraintName); ok {
			fmt.Fprintf(os.Stderr, "postgres: constraint %s: ok\n", pg.UniqueConstraintName)
			st.Constraint = true
		} else {
			fmt.Fprintf(os.Stderr, "postgres: constraint %s: missing (run 'tagkeep db init')\n", pg.UniqueConstraintName)
			st.OK = false
		}

		if flagStatusJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(st)
		}
		return nil
	},
}

func init() {
	DBCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&flagStatusJSON, "json", false, "Output status as JSON")
}
