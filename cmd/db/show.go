package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
	pg "github.com/tagkeep/tagkeep/internal/store/postgres"
)

var flagShowOutput string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the live schema of the tags table",
	RunE: func(cmd *cobra.Command, args []string) error {
		outFmt := strings.ToLower(strings.TrimSpace(flagShowOutput))
		if outFmt == "" {
			outFmt = "tables"
		}
		if outFmt != "tables" && outFmt != "md" && outFmt != "json" {
			return errors.New("--output must be 'tables', 'md' or 'json'")
		}

		cfg, err := cfgpkg.Load()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		db, err := pg.Connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		exists, err := pg.TableExists(ctx, db, pg.TableName)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("table %q does not exist; run 'tagkeep db init' first", pg.TableName)
		}

		cols, err := pg.TableColumns(ctx, db, pg.TableName)
		if err != nil {
			return err
		}
		idxs, err := pg.TableIndexes(ctx, db, pg.TableName)
		if err != nil {
			return err
		}

		switch outFmt {
		case "md":
			return showAsMarkdown(cols, idxs)
		case "json":
			return showAsJSON(cols, idxs)
		default:
			return showAsTables(cols, idxs)
		}
	},
}

func showAsTables(cols []pg.Column, idxs []pg.Index) error {
	fmt.Fprintf(os.Stdout, "TABLE: %s\n", pg.TableName)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"COLUMN", "TYPE", "NULLABLE", "DEFAULT"})
	for _, c := range cols {
		table.Append([]string{c.Name, c.DataType, strings.ToLower(c.Nullable), c.Default})
	}
	table.Render()

	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, "INDEXES:")
	it := tablewriter.NewWriter(os.Stdout)
	it.SetHeader([]string{"NAME", "DEFINITION"})
	for _, ix := range idxs {
		it.Append([]string{ix.Name, ix.Definition})
	}
	it.Render()
	return nil
}

func showAsMarkdown(cols []pg.Column, idxs []pg.Index) error {
	fmt.Fprintf(os.Stdout, "## %s\n", pg.TableName)
	fmt.Fprintln(os.Stdout, "| Column | Type | Nullable | Default |")
	fmt.Fprintln(os.Stdout, "|---|---|---|---|")
	for _, c := range cols {
		fmt.Fprintf(os.Stdout, "| %s | %s | %s | %s |\n", c.Name, c.DataType, strings.ToLower(c.Nullable), c.Default)
	}
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, "## Indexes")
	fmt.Fprintln(os.Stdout, "| Name | Definition |")
	fmt.Fprintln(os.Stdout, "|---|---|")
	for _, ix := range idxs {
		fmt.Fprintf(os.Stdout, "| %s | %s |\n", ix.Name, ix.Definition)
	}
	return nil
}

func showAsJSON(cols []pg.Column, idxs []pg.Index) error {
	out := struct {
		Table   string      `json:"table"`
		Columns []pg.Column `json:"columns"`
		Indexes []pg.Index  `json:"indexes"`
	}{Table: pg.TableName, Columns: cols, Indexes: idxs}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func init() {
	DBCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&flagShowOutput, "output", "tables", "Output format: tables, md or json")
}
