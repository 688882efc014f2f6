package cmd

import (
	"fmt"

	"rwallet/internal/cli"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [amount]",
	Short: "Show or change the daily goal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGoal,
}

func init() {
	rootCmd.AddCommand(goalCmd)
}

func runGoal(_ *cobra.Command, args []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	currency := cfg.General.Currency

	if len(args) == 0 {
		day := ctl.State().CurrentDay
		fmt.Printf("  Daily goal: %s\n", cli.FormatMoney(day.Goal, currency))
		fmt.Printf("  %s\n", cli.ProgressBar(day.GoalProgress(), 32))
		return nil
	}

	amount := cli.ParseAmount(args[0])
	if err := ctl.SetGoal(amount); err != nil {
		return err
	}
	fmt.Printf("  Daily goal set to %s\n", cli.FormatMoney(amount, currency))
	return nil
}
