package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/config"
	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current trading day",
	Long: `Status shows the session for the active date: balance, contracts per
trade, the slot list and whether you may still enter trades.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	s, err := loadSession(j)
	if err != nil {
		return err
	}

	printSession(s)
	return nil
}

func printSession(s *session.Session) {
	fmt.Printf("Session %s\n", s.Date)
	fmt.Printf("  Balance:            %.2f (day open %.2f)\n", s.Balance, s.StartBalance)
	fmt.Printf("  Contracts per trade: %d\n", s.Contracts)
	if s.Config().Mode == config.FixedStop {
		fmt.Printf("  Stop-loss remaining: %.2f of %.2f\n", s.StopLossRemaining, s.Config().DailyLossBudget)
	}

	fmt.Println("  Trades:")
	for i, slot := range s.Slots {
		if slot == nil {
			fmt.Printf("    %d. (pending)\n", i+1)
			continue
		}
		fmt.Printf("    %d. %-9s %+.2f", i+1, outcomeLabel(slot.Outcome), slot.Net())
		if slot.Note != "" {
			fmt.Printf("  [%s]", slot.Note)
		}
		fmt.Println()
	}

	if s.Phase() == session.DayLimitReached {
		fmt.Println("  Day limit reached - you are done for the day.")
	}
}

func outcomeLabel(o journal.Outcome) string {
	switch o {
	case journal.Win:
		return "win"
	case journal.Loss:
		return "loss"
	case journal.BreakEven:
		return "breakeven"
	}
	return string(o)
}
