package db

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	pg "github.com/tagkeep/tagkeep/internal/store/postgres"
)

// planCmd prints the DDL that init would submit, without connecting anywhere.
// Statements are collapsed to one line each for readability.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the DDL statements init would apply (no changes, no connection)",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, s := range pg.Statements() {
			fmt.Fprintf(cmd.OutOrStdout(), "PLAN: %s;\n", strings.Join(strings.Fields(s), " "))
		}
		return nil
	},
}

func init() {
	DBCmd.AddCommand(planCmd)
}
