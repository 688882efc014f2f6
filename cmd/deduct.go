package cmd

import (
	"fmt"

	"rwallet/internal/cli"
	"rwallet/internal/model"

	"github.com/spf13/cobra"
)

var fuelCmd = &cobra.Command{
	Use:   "fuel <amount>",
	Short: "Deduct fuel spend from today",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runDeduct(model.OpFuel, "fuel", args[0])
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <amount>",
	Short: "Deduct daily purchases from today",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runDeduct(model.OpPurchases, "purchases", args[0])
	},
}

var shareCmd = &cobra.Command{
	Use:   "share <amount>",
	Short: "Deduct a standalone owner-share payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runDeduct(model.OpOwnerShare, "owner share", args[0])
	},
}

func init() {
	rootCmd.AddCommand(fuelCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(shareCmd)
}

func runDeduct(t model.OpType, label, amountStr string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	amount := cli.ParseAmount(amountStr)
	if err := ctl.RecordDeduction(t, amount, label); err != nil {
		return err
	}

	day := ctl.State().CurrentDay
	fmt.Printf("  Deducted %s for %s. Net today: %s\n",
		cli.FormatMoney(amount, cfg.General.Currency),
		label,
		cli.FormatMoney(day.Net(), cfg.General.Currency))
	return nil
}
