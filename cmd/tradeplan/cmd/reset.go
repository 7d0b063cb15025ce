package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the whole trade log",
	Long: `Reset deletes every trade record and the stored session date.
Individual records are never deleted; the log only resets as a whole.

Requires --yes.`,
	RunE: runReset,
}

var resetYes bool

func init() {
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm clearing the log")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetYes {
		return fmt.Errorf("refusing to clear the log without --yes")
	}

	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	fmt.Println("Trade log cleared.")
	return nil
}
