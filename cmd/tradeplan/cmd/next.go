package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/journal"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Advance the session to the next trading day",
	Long: `Next rolls the session forward one calendar day: the closing balance
becomes the new day-open balance, contracts are re-sized, the stop-loss budget
refills and the slot list resets. The new date is stored so later commands
pick it up.`,
	RunE: runNext,
}

func init() {
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	s, err := loadSession(j)
	if err != nil {
		return err
	}

	current, err := time.Parse(journal.DateLayout, s.Date)
	if err != nil {
		return fmt.Errorf("parse session date: %w", err)
	}

	s.AdvanceDay(current.AddDate(0, 0, 1))

	if err := j.SetState(sessionDateKey, s.Date); err != nil {
		return err
	}

	fmt.Printf("Advanced to %s\n\n", s.Date)
	printSession(s)
	return nil
}
