package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/session"
)

var logCmd = &cobra.Command{
	Use:   "log <win|loss|breakeven>",
	Short: "Record a trade outcome into the next pending slot",
	Long: `Log records an outcome for the active session date. The P/L is derived
from the sized contract count and the configured point values, the balance is
updated, and the trade is appended to the journal.

Examples:
  tradeplan log win
  tradeplan log loss --slot 2`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

var logSlot int

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().IntVar(&logSlot, "slot", 0, "1-based slot to fill (default: first pending)")
}

func runLog(cmd *cobra.Command, args []string) error {
	outcome, err := journal.ParseOutcome(args[0])
	if err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	s, err := loadSession(j)
	if err != nil {
		return err
	}

	index := logSlot - 1
	if logSlot == 0 {
		index = s.NextPending()
		if index < 0 {
			return fmt.Errorf("no pending slot for %s: %w", s.Date, session.ErrInvalidTransition)
		}
	}

	rec, err := s.RecordOutcome(index, outcome)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s: %+.2f -> balance %.2f\n", outcomeLabel(rec.Outcome), rec.Net(), rec.BalanceAfter)
	if rec.Note != "" {
		fmt.Printf("Note: %s\n", rec.Note)
	}
	if s.Phase() == session.DayLimitReached {
		fmt.Println("Day limit reached - you are done for the day.")
	}
	return nil
}
