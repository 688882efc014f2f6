package cmd

import (
	"errors"
	"fmt"

	"rwallet/internal/cli"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagEarnShare int64

var earnCmd = &cobra.Command{
	Use:   "earn [amount]",
	Short: "Record earnings, then the owner-share cut for that earning",
	Long:  "Record an earnings amount. The owner's share of that earning is prompted immediately after; aborting the prompt cancels the whole entry.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEarn,
}

func init() {
	earnCmd.Flags().Int64Var(&flagEarnShare, "share", -1, "Owner share for this earning (skips the prompt)")
	rootCmd.AddCommand(earnCmd)
}

func runEarn(_ *cobra.Command, args []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	var amountStr string
	if len(args) == 1 {
		amountStr = args[0]
	} else {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Earnings amount").Placeholder("0").Value(&amountStr),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("  Cancelled, nothing recorded.")
				return nil
			}
			return err
		}
	}

	// Step one only captures the amount; nothing is persisted until the
	// owner-share step completes.
	pending := ctl.BeginEarnings(cli.ParseAmount(amountStr))

	share := flagEarnShare
	if share < 0 {
		var shareStr string
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Owner share for this earning").
				Description("Deducted from the same earning. Leave 0 if none.").
				Placeholder("0").
				Value(&shareStr),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Println("  Cancelled, nothing recorded.")
				return nil
			}
			return err
		}
		share = cli.ParseAmount(shareStr)
	}

	if err := ctl.CommitEarnings(pending, share); err != nil {
		return err
	}

	day := ctl.State().CurrentDay
	currency := cfg.General.Currency
	fmt.Printf("  Earned %s, owner share %s. Net today: %s\n",
		cli.FormatMoney(pending.Amount, currency),
		cli.FormatMoney(share, currency),
		cli.FormatMoney(day.Net(), currency))
	return nil
}
