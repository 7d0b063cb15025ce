package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/stats"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show overall and per-day statistics",
	Long: `Summary folds the full trade log into win rate, total and average daily
P/L, and a per-day performance table.

Example:
  tradeplan summary --org report.org`,
	RunE: runSummary,
}

var summaryOrgPath string

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&summaryOrgPath, "org", "", "also write an org-mode report to this path")
}

func runSummary(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	records, err := j.AllTrades()
	if err != nil {
		return fmt.Errorf("load trades: %w", err)
	}

	s := stats.Summarize(records)

	fmt.Printf("Total P/L:       %+.2f over %d day(s)\n", s.TotalProfit, s.TotalDays)
	fmt.Printf("Avg daily P/L:   %+.2f\n", s.AverageProfit)
	fmt.Printf("Win rate:        %.1f%% (%d W / %d L / %d BE)\n", s.WinRate, s.Wins, s.Losses, s.BreakEvens)
	fmt.Printf("Trades:          %d (%.1f/day)\n", s.TotalTrades, s.AvgTradesPerDay)

	if len(s.Days) > 0 {
		fmt.Println("\nDaily performance:")
		for _, d := range s.Days {
			fmt.Printf("  %s  %2d trade(s)  %+8.2f  end %.2f\n", d.Date, d.Trades, d.Profit, d.EndBalance)
		}
	}

	if summaryOrgPath != "" {
		f, err := os.Create(summaryOrgPath)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()

		if err := stats.WriteOrg(f, s); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("\nWrote org report to %s\n", summaryOrgPath)
	}
	return nil
}
