package cmd

import (
	"fmt"

	"rwallet/internal/cli"

	"github.com/spf13/cobra"
)

func runStatus(_ *cobra.Command, _ []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	snap := ctl.State()
	day := snap.CurrentDay
	currency := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RIDER WALLET  %s", day.DayMarker)))
	fmt.Println()

	fmt.Printf("  Daily goal  %s\n", cli.FormatMoney(day.Goal, currency))
	fmt.Printf("  %s\n\n", cli.ProgressBar(day.GoalProgress(), 32))

	fmt.Printf("  Net balance  %s\n\n", cli.FormatMoney(day.Net(), currency))

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Today"},
		Rows: [][]string{
			{"Earnings", cli.FormatMoney(day.Earnings, currency)},
			{"Owner share", cli.FormatMoney(day.OwnerShare, currency)},
			{"Fuel", cli.FormatMoney(day.Fuel, currency)},
			{"Purchases", cli.FormatMoney(day.Purchases, currency)},
			{"Objective payments", cli.FormatMoney(day.ObjectivePayments, currency)},
		},
	}))

	fmt.Printf("\n  Vault balance: %s (%d entries)\n",
		cli.FormatMoney(snap.VaultBalance(), currency), len(snap.Vault))
	if n := len(snap.Objectives); n > 0 {
		fmt.Printf("  Objectives: %d (run `rwallet obj` for details)\n", n)
	}
	fmt.Println()

	return nil
}
