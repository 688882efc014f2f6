package cmd

import (
	"errors"
	"fmt"

	"rwallet/internal/cli"
	"rwallet/internal/ledger"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagVaultPIN string

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Show the savings vault (PIN required)",
	RunE:  runVaultShow,
}

var vaultWithdrawCmd = &cobra.Command{
	Use:   "withdraw <amount>",
	Short: "Withdraw savings from the vault",
	Args:  cobra.ExactArgs(1),
	RunE:  runVaultWithdraw,
}

func init() {
	vaultCmd.PersistentFlags().StringVar(&flagVaultPIN, "pin", "", "Vault PIN (skips the prompt)")
	vaultCmd.AddCommand(vaultWithdrawCmd)
	rootCmd.AddCommand(vaultCmd)
}

// unlockVault verifies the PIN, prompting when none was given on the flag.
// A wrong PIN is a user-visible rejection, not an error state.
func unlockVault(ctl *ledger.Controller) (bool, error) {
	pin := flagVaultPIN
	if pin == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Vault PIN").
				EchoMode(huh.EchoModePassword).
				Value(&pin),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return false, nil
			}
			return false, err
		}
	}
	if !ctl.VerifyVaultPIN(pin) {
		fmt.Println("  Wrong PIN. Vault stays locked.")
		return false, nil
	}
	return true, nil
}

func runVaultShow(_ *cobra.Command, _ []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	ok, err := unlockVault(ctl)
	if err != nil || !ok {
		return err
	}

	snap := ctl.State()
	currency := cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("VAULT"))
	fmt.Println()
	fmt.Printf("  Total savings: %s (%d entries)\n\n",
		cli.FormatMoney(snap.VaultBalance(), currency), len(snap.Vault))

	if len(snap.Vault) == 0 {
		fmt.Println("  No vault history yet.")
		return nil
	}

	// Newest first
	rows := make([][]string, 0, len(snap.Vault))
	for i := len(snap.Vault) - 1; i >= 0; i-- {
		e := snap.Vault[i]
		rows = append(rows, []string{e.Date, cli.FormatSigned(e.Amount, currency)})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runVaultWithdraw(_ *cobra.Command, args []string) error {
	ctl, cfg, st, err := openWallet()
	if err != nil {
		return err
	}
	defer st.Close()

	ok, err := unlockVault(ctl)
	if err != nil || !ok {
		return err
	}

	amount := cli.ParseAmount(args[0])
	if err := ctl.WithdrawFromVault(amount); err != nil {
		return err
	}
	fmt.Printf("  Withdrew %s. Vault balance: %s\n",
		cli.FormatMoney(amount, cfg.General.Currency),
		cli.FormatMoney(ctl.State().VaultBalance(), cfg.General.Currency))
	return nil
}
