package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the trade log as CSV",
	Long: `Export dumps the full trade log as CSV for spreadsheets.

Example:
  tradeplan export --out trades.csv`,
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	records, err := j.AllTrades()
	if err != nil {
		return fmt.Errorf("load trades: %w", err)
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportOut, err)
		}
		defer f.Close()
		out = f
	}

	if err := journal.WriteCSV(out, records); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	if exportOut != "" {
		fmt.Printf("Wrote %d trade(s) to %s\n", len(records), exportOut)
	}
	return nil
}
