package db

import (
	"github.com/spf13/cobra"
)

var DBCmd = &cobra.Command{
	Use:   "db",
	Short: "Database provisioning commands",
}

func init() {
	DBCmd.AddCommand(initCmd)
}
