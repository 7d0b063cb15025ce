package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/risk"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Size today's trades from the risk settings",
	Long: `Plan runs the position sizer: the daily risk budget (balance x risk %)
divided by the dollar risk per contract (stop-loss points x point value),
floored to whole contracts.

By default it sizes from the session's day-open balance; pass --balance to
size a hypothetical account.

Example:
  tradeplan plan --balance 500`,
	RunE: runPlan,
}

var planBalance float64

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().Float64VarP(&planBalance, "balance", "b", -1, "balance to size from (default: day-open balance)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	balance := planBalance
	if balance < 0 {
		j, err := openJournal()
		if err != nil {
			return err
		}
		defer j.Close()

		s, err := loadSession(j)
		if err != nil {
			return err
		}
		balance = s.StartBalance
	}

	d := risk.Evaluate(risk.Sizing{
		Balance:     balance,
		RiskPercent: cfg.RiskPercent,
		StopPoints:  cfg.StopLossPoints,
		PointValue:  cfg.PointValue,
	})

	fmt.Printf("Balance:            %.2f\n", balance)
	fmt.Printf("Daily risk budget:  %.2f (%.1f%%)\n", d.Sized.RiskBudget, cfg.RiskPercent)
	fmt.Printf("Risk per contract:  %.2f (%.1f pts x %.2f/pt)\n",
		d.Sized.RiskPerContract, cfg.StopLossPoints, cfg.PointValue)
	fmt.Printf("Contracts per trade: %d\n", d.Sized.Contracts)

	if !d.Allowed {
		fmt.Println()
		for _, v := range d.Violations {
			fmt.Printf("  %s: %s\n", v.Code, v.Msg)
		}
	}
	return nil
}
